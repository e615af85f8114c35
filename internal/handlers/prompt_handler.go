package handlers

import (
	"net/http"

	"github.com/farellandr/promptbox/internal/engagement"
	"github.com/farellandr/promptbox/internal/helpers"
	"github.com/farellandr/promptbox/internal/models"
	"github.com/farellandr/promptbox/internal/repository"
	"github.com/gin-gonic/gin"
)

type PromptRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Author   string  `json:"author" binding:"required"`
	Tags     *string `json:"tags"`
}

const promptRequiredMessage = "Title, content, category, and author are required."

var promptMessages = bindMessages{
	"Title":    {"required": "Title is required."},
	"Content":  {"required": "Content is required."},
	"Category": {"required": "Category is required."},
	"Author":   {"required": "Author is required."},
}

func ListAllPrompts(c *gin.Context) {
	store, ok := storeFrom(c)
	if !ok {
		return
	}

	prompts, err := store.Prompts.ListAll()
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch prompts.")
		return
	}

	c.JSON(http.StatusOK, prompts)
}

func ListPromptsByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Category is required.")
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	prompts, err := store.Prompts.ListByCategory(category)
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch prompts.")
		return
	}

	c.JSON(http.StatusOK, prompts)
}

func SearchPrompts(c *gin.Context) {
	store, ok := storeFrom(c)
	if !ok {
		return
	}

	prompts, err := store.Prompts.ListAll()
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch prompts.")
		return
	}

	filtered, err := engagement.Filter(prompts, engagement.Query{
		Text:  c.Query("q"),
		Field: c.Query("field"),
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	sorted, err := engagement.Sort(filtered, c.Query("sort"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, sorted)
}

func GetPrompt(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	prompt, err := store.Prompts.GetByID(id)
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch prompt.")
		return
	}

	c.JSON(http.StatusOK, prompt)
}

func CreatePrompt(c *gin.Context) {
	var req PromptRequest
	if !bindJSON(c, &req, promptMessages, promptRequiredMessage) {
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	prompt, err := store.Prompts.Create(req.Title, req.Content, req.Category, req.Author, req.Tags)
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to create prompt.")
		return
	}

	c.JSON(http.StatusCreated, prompt)
}

func LikePrompt(c *gin.Context) {
	vote(c, "Failed to like prompt.", func(store *repository.Store, id uint) (*models.Prompt, error) {
		return store.Prompts.LikeAndFetch(id)
	})
}

func DislikePrompt(c *gin.Context) {
	vote(c, "Failed to dislike prompt.", func(store *repository.Store, id uint) (*models.Prompt, error) {
		return store.Prompts.DislikeAndFetch(id)
	})
}

// vote runs the increment-then-refetch sequence and answers with the updated prompt.
func vote(c *gin.Context, failure string, apply func(store *repository.Store, id uint) (*models.Prompt, error)) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	prompt, err := apply(store, id)
	if err != nil {
		helpers.RespondWithStoreError(c, err, failure)
		return
	}

	c.JSON(http.StatusOK, prompt)
}
