package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_MarshalJSON(t *testing.T) {
	g := Game{
		ID:        "bad-piggies",
		Title:     "Bad Piggies",
		Launch:    FlashResource("https://cdn.example.com/bp.swf"),
		Category:  "arcade",
		Featured:  true,
		AddedDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "flash", raw["gameType"])
	assert.Equal(t, "https://cdn.example.com/bp.swf", raw["swfUrl"])
	assert.NotContains(t, raw, "embedUrl")
	assert.NotContains(t, raw, "path")
	assert.Equal(t, "2024-01-02T03:04:05Z", raw["addedDate"])
	assert.Equal(t, []any{}, raw["tags"])
}

func TestGame_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Launch
		wantErr bool
	}{
		{name: "explicit iframe", body: `{"gameType":"iframe","embedUrl":"https://e"}`, want: IframeEmbed("https://e")},
		{name: "explicit type keeps only its field", body: `{"gameType":"html5","path":"/g/index.html","swfUrl":"https://s"}`, want: LocalFile("/g/index.html")},
		{name: "inferred flash", body: `{"swfUrl":"https://s"}`, want: FlashResource("https://s")},
		{name: "inferred iframe", body: `{"embedUrl":"https://e"}`, want: IframeEmbed("https://e")},
		{name: "inferred local", body: `{"path":"/g"}`, want: LocalFile("/g")},
		{name: "none", body: `{"id":"x"}`, want: Launch{}},
		{name: "unknown type", body: `{"gameType":"java"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Game
			err := json.Unmarshal([]byte(tt.body), &g)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Launch)
		})
	}
}

func TestGame_HasTag(t *testing.T) {
	g := Game{Tags: []string{"flash", "retro"}}
	assert.True(t, g.HasTag("retro"))
	assert.False(t, g.HasTag("Retro"))
}
