package models

// GameCategory is a named grouping referenced by Game.Category.
type GameCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}
