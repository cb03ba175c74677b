package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor is returned for cursors that cannot be decoded, belong to
// another resource type or point at an item that no longer exists.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor is the last item seen by the client.
type Cursor struct {
	Type  string
	Value string
}

// Encode returns an opaque URL-safe representation.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Type + ":" + c.Value))
}

// DecodeCursor parses a cursor produced by Encode. The empty string decodes
// to the zero Cursor, meaning the first page.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	typ, value, ok := strings.Cut(string(b), ":")
	if !ok || typ == "" {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Type: typ, Value: value}, nil
}
