package entry

import (
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/trace/pkg/day"
)

func mustDate(t *testing.T, s string) day.Date {
	t.Helper()
	d, err := day.Parse(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func TestRoundTrip(t *testing.T) {
	now := time.UnixMilli(time.Now().UnixMilli())
	in := []Entry{
		New(mustDate(t, "2024-01-01"), "first light", now),
		{
			Date:        mustDate(t, "2024-03-15"),
			Text:        "two\nlines",
			Highlighted: true,
			Created:     now.Add(-48 * time.Hour),
			Updated:     now,
		},
	}

	blob, err := MarshalList(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := UnmarshalList(blob)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d entries, got %d", len(in), len(out))
	}
	// Order-independent structural equality.
	for _, want := range in {
		found := false
		for _, got := range out {
			if got.Equal(want) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing entry for %s after round trip", want.Date)
		}
	}
}

func TestUnmarshalAbsentBlob(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		out, err := UnmarshalList(data)
		if err != nil {
			t.Fatalf("absent blob must not fail: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected empty collection, got %d entries", len(out))
		}
	}
}

func TestUnmarshalCorruptBlob(t *testing.T) {
	for _, data := range []string{"{not json", `{"a":1}`, `"just a string"`} {
		_, err := UnmarshalList([]byte(data))
		if err == nil {
			t.Fatalf("expected corrupt error for %q", data)
		}
		if !errors.Is(err, ErrCorrupt) {
			t.Fatalf("expected ErrCorrupt, got %v", err)
		}
	}
}

func TestUnmarshalToleratesUnknownAndMissingFields(t *testing.T) {
	blob := []byte(`[{"dateEpochDay":19800,"text":"hi","futureField":true}]`)
	out, err := UnmarshalList(blob)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one entry, got %d", len(out))
	}
	if out[0].Highlighted {
		t.Fatalf("missing flag must default to false")
	}
	if out[0].Text != "hi" {
		t.Fatalf("unexpected text %q", out[0].Text)
	}
}

func TestStableFieldNames(t *testing.T) {
	blob, err := MarshalList([]Entry{New(day.Date(1), "x", time.UnixMilli(5))})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"dateEpochDay"`, `"text"`, `"isHighlighted"`, `"createdAt"`, `"updatedAt"`} {
		if !strings.Contains(string(blob), field) {
			t.Fatalf("blob %s missing field %s", blob, field)
		}
	}
}
