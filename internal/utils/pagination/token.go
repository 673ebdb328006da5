package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor identifies the last item of a page in a (timestamp, id) ordered listing.
type Cursor struct {
	At time.Time
	ID string
}

// After reports whether an item at (at, id) sorts after the cursor in a
// newest-first listing, i.e. belongs to the next page.
func (c Cursor) After(at time.Time, id string) bool {
	if at.Equal(c.At) {
		return id < c.ID
	}
	return at.Before(c.At)
}

// EncodeToken creates a base64 encoded token from a timestamp and an id.
func EncodeToken(at time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", at.Format(timeFormat), id)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a cursor.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	at, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (timestamp parse): %w", err)
	}
	return Cursor{At: at, ID: parts[1]}, nil
}
