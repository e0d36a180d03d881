package service

import (
	"encoding/base64"
	"fmt"
	"time"
)

// Pagination cursors encode the (created_at, id) keyset boundary as an
// opaque token. Combined with the newest-first ordering and the id
// tie-break this yields a deterministic total order even when many notes
// share one timestamp.

func encodeCursor(createdAt time.Time, id int64) string {
	raw := fmt.Sprintf("%d|%d", createdAt.UnixNano(), id)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(token string) (time.Time, int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("malformed cursor: %w", err)
	}
	var nanos, id int64
	if _, err := fmt.Sscanf(string(raw), "%d|%d", &nanos, &id); err != nil {
		return time.Time{}, 0, fmt.Errorf("malformed cursor: %w", err)
	}
	return time.Unix(0, nanos), id, nil
}
