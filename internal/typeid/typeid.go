package typeid

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixBoard  = "board"
	PrefixReplay = "replay"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

// NewBoardID identifies one page load of the whiteboard.
func NewBoardID() string { return New(PrefixBoard) }

// NewReplayID identifies one run of the replay tool.
func NewReplayID() string { return New(PrefixReplay) }

func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
