package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	token := encodeCursor(createdAt, 771)

	gotTime, gotId, err := decodeCursor(token)
	require.NoError(t, err)
	assert.True(t, gotTime.Equal(createdAt))
	assert.Equal(t, int64(771), gotId)
}

func TestDecodeCursor_Malformed(t *testing.T) {
	for _, token := range []string{"", "!!!", "bm90IGEgY3Vyc29y"} {
		_, _, err := decodeCursor(token)
		assert.Error(t, err, "token %q", token)
	}
}
