package handlers

import (
	"net/http"

	"github.com/farellandr/promptbox/internal/helpers"
	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon" binding:"required"`
	Color string `json:"color" binding:"required"`
}

const categoryRequiredMessage = "Name, icon, and color are required."

var categoryMessages = bindMessages{
	"Name":  {"required": "Name is required."},
	"Icon":  {"required": "Icon is required."},
	"Color": {"required": "Color is required."},
}

func ListCategories(c *gin.Context) {
	store, ok := storeFrom(c)
	if !ok {
		return
	}

	categories, err := store.Categories.ListAll()
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch categories.")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func ListCategoriesWithCounts(c *gin.Context) {
	store, ok := storeFrom(c)
	if !ok {
		return
	}

	categories, err := store.Categories.ListWithCounts()
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch category counts.")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req, categoryMessages, categoryRequiredMessage) {
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	category, err := store.Categories.Create(req.Name, req.Icon, req.Color)
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to create category.")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func GetCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	category, err := store.Categories.GetByID(id)
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch category.")
		return
	}

	c.JSON(http.StatusOK, category)
}

func GetCategoryByName(c *gin.Context) {
	store, ok := storeFrom(c)
	if !ok {
		return
	}

	category, err := store.Categories.GetByName(c.Param("name"))
	if err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to fetch category.")
		return
	}

	c.JSON(http.StatusOK, category)
}

func UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if !bindJSON(c, &req, categoryMessages, categoryRequiredMessage) {
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	if _, err := store.Categories.Update(id, req.Name, req.Icon, req.Color); err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to update category.")
		return
	}

	c.JSON(http.StatusOK, helpers.MessageResponse{Message: "Category updated successfully."})
}

func DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	store, ok := storeFrom(c)
	if !ok {
		return
	}

	if _, err := store.Categories.Delete(id); err != nil {
		helpers.RespondWithStoreError(c, err, "Failed to delete category.")
		return
	}

	c.JSON(http.StatusOK, helpers.MessageResponse{Message: "Category deleted successfully."})
}
