package handler

import (
	"net/http"
	"strconv"
	"time"

	"arcade/backend/internal/catalog"
	"arcade/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// region --- DTOs ---

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []models.Game `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// RemoveGameResponse reports whether a game was removed.
type RemoveGameResponse struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Add a game
// @Description  Appends a game to the catalog. Duplicate ids are accepted; an empty id is replaced by a generated one.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body models.Game true "Game"
// @Success      201  {object}  models.Game
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var game models.Game
	if err := c.ShouldBindJSON(&game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	if game.AddedDate.IsZero() {
		game.AddedDate = time.Now().UTC()
	}

	h.Store.AddGame(game)

	c.JSON(http.StatusCreated, game)
}

// DeleteGame godoc
// @Summary      Remove a game
// @Description  Removes the first game with the given id. Unknown ids are a no-op.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Game ID"
// @Success      200 {object} RemoveGameResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id := c.Param("id")
	removed := h.Store.RemoveGame(id)
	c.JSON(http.StatusOK, RemoveGameResponse{ID: id, Removed: removed})
}

// endregion

// region --- Public Handlers ---

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves the first game with the given id.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} models.Game
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	game, ok := h.Store.GameByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, game)
}

// GetFeaturedGames godoc
// @Summary      Get featured games
// @Description  Retrieves the featured games in catalog order.
// @Tags         games
// @Produce      json
// @Success      200 {array} models.Game
// @Router       /games/featured [get]
func (h *Handler) GetFeaturedGames(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.FeaturedGames())
}

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves a paginated list of games, with optional filtering by category, featured flag, title and tag.
// @Tags         games
// @Produce      json
// @Param        category query     string  false  "Category ID (exact match)"
// @Param        featured query     bool    false  "Return only featured games (true/false; anything else is rejected)"
// @Param        q        query     string  false  "Search query for game title"
// @Param        tag      query     string  false  "Return only games with this tag"
// @Param        page     query     int     false  "Page number" default(1)
// @Param        limit    query     int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedGameResponse
// @Failure      400 {object} ErrorResponse "Invalid featured flag"
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	featuredOnly := false
	if raw := c.Query("featured"); raw != "" {
		featuredOnly, err = strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid featured flag, expected true or false"})
			return
		}
	}
	categoryID, hasCategory := c.GetQuery("category")

	var games []models.Game
	switch {
	case featuredOnly && hasCategory:
		games = catalog.InCategory(h.Store.FeaturedGames(), categoryID)
	case featuredOnly:
		games = h.Store.FeaturedGames()
	case hasCategory:
		games = h.Store.GamesByCategory(categoryID)
	default:
		games = h.Store.Games()
	}

	if q := c.Query("q"); q != "" {
		games = catalog.MatchingTitle(games, q)
	}
	if tag := c.Query("tag"); tag != "" {
		games = catalog.WithTag(games, tag)
	}

	c.JSON(http.StatusOK, Paginate(games, page, limit))
}

// endregion
