package handler

import (
	"arcade/backend/internal/catalog"
	"arcade/backend/internal/config"
	"arcade/backend/internal/hub"
)

// Handler serves the catalog API over an explicit store.
type Handler struct {
	Store  *catalog.Store
	Hub    *hub.Hub
	Config *config.Config
}

// New creates a Handler.
func New(store *catalog.Store, h *hub.Hub, cfg *config.Config) *Handler {
	return &Handler{Store: store, Hub: h, Config: cfg}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}
