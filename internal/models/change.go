package models

import "time"

type ChangeType string

const (
	ChangeGameAdded   ChangeType = "game_added"
	ChangeGameRemoved ChangeType = "game_removed"
)

// Change describes a single mutation of the catalog.
type Change struct {
	Type ChangeType `json:"type"`
	Game Game       `json:"game"`
	At   time.Time  `json:"at"`
}
