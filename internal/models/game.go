package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// GameType identifies how a game is launched.
type GameType string

const (
	GameTypeNone   GameType = ""
	GameTypeHTML5  GameType = "html5"
	GameTypeIframe GameType = "iframe"
	GameTypeFlash  GameType = "flash"
)

// Launch describes how to render a game. Only the location relevant to
// the type is carried: a local path for html5, an embed URL for iframe
// and a SWF resource URL for flash.
type Launch struct {
	Type     GameType
	Location string
}

// LocalFile returns a launch for a game served from a local path.
func LocalFile(path string) Launch { return Launch{Type: GameTypeHTML5, Location: path} }

// IframeEmbed returns a launch for a game embedded from an external URL.
func IframeEmbed(url string) Launch { return Launch{Type: GameTypeIframe, Location: url} }

// FlashResource returns a launch for a SWF game run through an emulator.
func FlashResource(url string) Launch { return Launch{Type: GameTypeFlash, Location: url} }

// ParseGameType validates a game type tag.
func ParseGameType(s string) (GameType, error) {
	switch t := GameType(s); t {
	case GameTypeNone, GameTypeHTML5, GameTypeIframe, GameTypeFlash:
		return t, nil
	}
	return GameTypeNone, fmt.Errorf("unknown game type %q", s)
}

// Game represents a playable catalog entry.
type Game struct {
	ID          string
	Title       string
	Description string
	Thumbnail   string
	Launch      Launch
	Category    string
	Tags        []string
	Featured    bool
	AddedDate   time.Time
}

// gameJSON is the wire shape used by the web front-end.
type gameJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Path        string    `json:"path,omitempty"`
	EmbedURL    string    `json:"embedUrl,omitempty"`
	SwfURL      string    `json:"swfUrl,omitempty"`
	GameType    string    `json:"gameType,omitempty"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	AddedDate   time.Time `json:"addedDate"`
}

// MarshalJSON flattens the launch variant into the path/embedUrl/swfUrl fields.
func (g Game) MarshalJSON() ([]byte, error) {
	out := gameJSON{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Thumbnail:   g.Thumbnail,
		GameType:    string(g.Launch.Type),
		Category:    g.Category,
		Tags:        g.Tags,
		Featured:    g.Featured,
		AddedDate:   g.AddedDate.UTC(),
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	switch g.Launch.Type {
	case GameTypeHTML5:
		out.Path = g.Launch.Location
	case GameTypeIframe:
		out.EmbedURL = g.Launch.Location
	case GameTypeFlash:
		out.SwfURL = g.Launch.Location
	}
	return json.Marshal(out)
}

// UnmarshalJSON picks the launch variant from gameType, or infers it from
// the single location field that is set when gameType is absent.
func (g *Game) UnmarshalJSON(data []byte) error {
	var in gameJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	launch, err := launchFromWire(in.GameType, in.Path, in.EmbedURL, in.SwfURL)
	if err != nil {
		return err
	}
	*g = Game{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Thumbnail:   in.Thumbnail,
		Launch:      launch,
		Category:    in.Category,
		Tags:        in.Tags,
		Featured:    in.Featured,
		AddedDate:   in.AddedDate,
	}
	return nil
}

func launchFromWire(gameType, path, embedURL, swfURL string) (Launch, error) {
	t, err := ParseGameType(gameType)
	if err != nil {
		return Launch{}, err
	}
	switch t {
	case GameTypeHTML5:
		return LocalFile(path), nil
	case GameTypeIframe:
		return IframeEmbed(embedURL), nil
	case GameTypeFlash:
		return FlashResource(swfURL), nil
	}
	switch {
	case swfURL != "":
		return FlashResource(swfURL), nil
	case embedURL != "":
		return IframeEmbed(embedURL), nil
	case path != "":
		return LocalFile(path), nil
	}
	return Launch{}, nil
}

// HasTag reports whether the game carries the given tag.
func (g Game) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
