package handlers

import (
	"errors"
	"net/http"

	"github.com/farellandr/promptbox/internal/helpers"
	"github.com/farellandr/promptbox/internal/middleware"
	"github.com/farellandr/promptbox/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindMessages maps struct field -> validator tag -> client message.
type bindMessages map[string]map[string]string

func bindJSON(c *gin.Context, req any, messages bindMessages, fallback string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, resolveBindError(err, messages, fallback))
		return false
	}
	return true
}

func resolveBindError(err error, messages bindMessages, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			if fieldMsgs, ok := messages[verr.Field()]; ok {
				if msg, ok := fieldMsgs[verr.Tag()]; ok {
					return msg
				}
			}
		}
	}
	if fallback != "" {
		return fallback
	}
	return "Invalid input. Please check your fields."
}

func storeFrom(c *gin.Context) (*repository.Store, bool) {
	store := middleware.GetStore(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return store, true
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return id, true
}

func limitQuery(c *gin.Context, fallback int) (int, bool) {
	limit, err := helpers.ParseLimit(c.Query("limit"), fallback)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return 0, false
	}
	return limit, true
}
