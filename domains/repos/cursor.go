package repos

import (
	"encoding/base64"
	"errors"
	"time"
)

// Cursors are a reversible base64 encoding of the boundary row's
// creation timestamp. They carry no integrity check; a forged cursor
// can shift the page window but never read private rows. A cursor that
// does not decode to a timestamp is rejected outright.
var ErrInvalidCursor = errors.New("invalid cursor")

// ErrCursorConflict rejects requests carrying both cursor directions.
var ErrCursorConflict = errors.New("next_cursor and previous_cursor are mutually exclusive")

// encodeCursor packs a boundary timestamp into an opaque cursor.
func encodeCursor(t time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(t.Format(time.RFC3339Nano)))
}

// decodeCursor unpacks a cursor. The empty cursor is the no-more-pages
// sentinel and decodes to ok=false rather than an error.
func decodeCursor(cursor string) (t time.Time, ok bool, err error) {
	if cursor == "" {
		return time.Time{}, false, nil
	}

	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, false, ErrInvalidCursor
	}
	if len(raw) == 0 {
		return time.Time{}, false, nil
	}

	t, err = time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return time.Time{}, false, ErrInvalidCursor
	}
	return t, true, nil
}
