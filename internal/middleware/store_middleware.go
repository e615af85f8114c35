package middleware

import (
	"github.com/farellandr/promptbox/internal/repository"
	"github.com/gin-gonic/gin"
)

const storeKey = "store"

func StoreMiddleware(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storeKey, store)
		c.Next()
	}
}

func GetStore(c *gin.Context) *repository.Store {
	store, exists := c.Get(storeKey)
	if !exists {
		return nil
	}
	return store.(*repository.Store)
}
