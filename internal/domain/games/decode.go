package games

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned when a game document has no content.
var ErrEmptyPayload = errors.New("games: empty payload")

// Decode parses a raw play-by-play document. Missing keys decode to nil
// fields; a document that is not valid JSON, or whose values have the wrong
// type, is rejected as a whole.
func Decode(data []byte) (Game, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Game{}, ErrEmptyPayload
	}
	if trimmed[0] != '{' {
		return Game{}, fmt.Errorf("games: payload is not an object")
	}

	var g Game
	if err := json.Unmarshal(trimmed, &g); err != nil {
		return Game{}, fmt.Errorf("games: decode payload: %w", err)
	}
	return g, nil
}
