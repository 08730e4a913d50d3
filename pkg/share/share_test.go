package share

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunc(t *testing.T) {
	var got string
	var s Sharer = Func(func(_ context.Context, text string) error {
		got = text
		return nil
	})
	assert.NoError(t, s.Share(context.Background(), "hello"))
	assert.Equal(t, "hello", got)
}

func TestClipboardHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Clipboard{}.Share(ctx, "x"), context.Canceled)
}
