package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_Seen(t *testing.T) {
	t.Parallel()

	c := New()

	assert.False(t, c.Seen("mid.1"), "first delivery is fresh")
	assert.True(t, c.Seen("mid.1"), "redelivery is suppressed")
	assert.False(t, c.Seen("mid.2"), "other ids are independent")
}

func TestCache_EmptyIDNeverSeen(t *testing.T) {
	t.Parallel()

	c := New()

	// Events without a mid (e.g. postbacks) must never be deduped away.
	assert.False(t, c.Seen(""))
	assert.False(t, c.Seen(""))
}
