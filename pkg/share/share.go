// Package share hands composed reflection text to a share target.
package share

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no share target exists on this system.
var ErrUnavailable = errors.New("share target unavailable")

// Sharer delivers text somewhere the user can paste or send it.
type Sharer interface {
	Share(ctx context.Context, text string) error
}

// Clipboard shares by copying to the system clipboard.
type Clipboard struct{}

func (Clipboard) Share(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Func adapts a function to Sharer.
type Func func(ctx context.Context, text string) error

func (f Func) Share(ctx context.Context, text string) error {
	return f(ctx, text)
}
