package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/trace/pkg/day"
)

// ErrCorrupt marks a journal blob that exists but cannot be decoded. It is
// distinct from the absent-blob case, which decodes to an empty collection.
var ErrCorrupt = errors.New("entry: corrupt journal blob")

// record is the durable form of an Entry. The field names and the epoch-day
// date encoding are the on-disk format and must stay stable across versions.
// Timestamps are Unix milliseconds.
type record struct {
	DateEpochDay  int64  `json:"dateEpochDay"`
	Text          string `json:"text"`
	IsHighlighted bool   `json:"isHighlighted"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

// MarshalList serialises a collection to its durable blob. Storage order is
// irrelevant; readers re-derive ordering.
func MarshalList(entries []Entry) ([]byte, error) {
	records := make([]record, 0, len(entries))
	for _, e := range entries {
		records = append(records, record{
			DateEpochDay:  int64(e.Date),
			Text:          e.Text,
			IsHighlighted: e.Highlighted,
			CreatedAt:     e.Created.UnixMilli(),
			UpdatedAt:     e.Updated.UnixMilli(),
		})
	}
	return json.Marshal(records)
}

// UnmarshalList deserialises a durable blob. An empty or absent blob yields
// an empty collection; a malformed blob fails with ErrCorrupt. Unknown
// fields in records are ignored and absent optional fields take their zero
// defaults, so older and newer blobs both decode.
func UnmarshalList(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return []Entry{}, nil
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Entry{
			Date:        day.Date(r.DateEpochDay),
			Text:        r.Text,
			Highlighted: r.IsHighlighted,
			Created:     time.UnixMilli(r.CreatedAt),
			Updated:     time.UnixMilli(r.UpdatedAt),
		})
	}
	return entries, nil
}
