package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary      Get all categories
// @Description  Retrieves every category in catalog order.
// @Tags         categories
// @Produce      json
// @Success      200  {array}   models.GameCategory
// @Router       /categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Categories())
}

// GetCategory godoc
// @Summary      Get a single category by ID
// @Description  Retrieves the first category with the given id.
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  models.GameCategory
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Router       /categories/{id} [get]
func (h *Handler) GetCategory(c *gin.Context) {
	category, ok := h.Store.Category(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetCategoryGames godoc
// @Summary      Get the games of a category
// @Description  Retrieves the games whose category equals the given id exactly. Unknown ids yield an empty list.
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {array}   models.Game
// @Router       /categories/{id}/games [get]
func (h *Handler) GetCategoryGames(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.GamesByCategory(c.Param("id")))
}
