package repos

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	original := time.Date(2025, 6, 14, 9, 30, 15, 123456789, time.UTC)

	cursor := encodeCursor(original)
	decoded, ok, err := decodeCursor(cursor)

	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, decoded.Equal(original))
}

func TestDecodeCursorEmptyIsSentinel(t *testing.T) {
	_, ok, err := decodeCursor("")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeCursorEncodedEmptyIsSentinel(t *testing.T) {
	// base64 of the empty string, what a terminal page hands back
	_, ok, err := decodeCursor(base64.StdEncoding.EncodeToString(nil))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	cases := []string{
		"not base64 at all!!",
		base64.StdEncoding.EncodeToString([]byte("not a timestamp")),
		base64.StdEncoding.EncodeToString([]byte("2025-13-45T99:99:99Z")),
	}

	for _, cursor := range cases {
		_, _, err := decodeCursor(cursor)
		assert.ErrorIs(t, err, ErrInvalidCursor, "cursor %q", cursor)
	}
}
