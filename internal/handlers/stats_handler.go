package handlers

import (
	"net/http"

	"github.com/farellandr/promptbox/internal/engagement"
	"github.com/farellandr/promptbox/internal/helpers"
	"github.com/gin-gonic/gin"
)

func TopCreators(c *gin.Context) {
	limit, ok := limitQuery(c, engagement.DefaultTopN)
	if !ok {
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	prompts, err := store.Prompts.ListAll()
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch top creators.")
		return
	}

	c.JSON(http.StatusOK, engagement.TopCreators(prompts, limit))
}

func MostLikedPrompts(c *gin.Context) {
	limit, ok := limitQuery(c, engagement.DefaultTopN)
	if !ok {
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	prompts, err := store.Prompts.ListAll()
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch prompts.")
		return
	}

	c.JSON(http.StatusOK, engagement.MostLiked(prompts, limit))
}

func TopRatedPrompts(c *gin.Context) {
	limit, ok := limitQuery(c, 0)
	if !ok {
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	prompts, err := store.Prompts.ListAll()
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch prompts.")
		return
	}

	c.JSON(http.StatusOK, engagement.TopRated(prompts, limit))
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
