package prompts

import (
	"testing"

	"tableflip.dev/trace/pkg/day"
)

func TestForDateDeterministic(t *testing.T) {
	d, err := day.Parse("2026-08-31")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ForDate(d) != ForDate(d) {
		t.Fatalf("same date must yield the same prompt")
	}
}

func TestForDateNeverEmpty(t *testing.T) {
	for _, d := range []day.Date{-40000, -1, 0, 1, 19800, 1 << 20} {
		p := ForDate(d)
		if p == "" {
			t.Fatalf("empty prompt for day %d", d)
		}
		found := false
		for _, candidate := range list {
			if candidate == p {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("prompt %q for day %d not from the fixed list", p, d)
		}
	}
}

func TestRotation(t *testing.T) {
	base := day.Date(0)
	if ForDate(base) != list[0] {
		t.Fatalf("day 0 must map to the first prompt")
	}
	if ForDate(base.Add(len(list))) != list[0] {
		t.Fatalf("rotation must wrap after %d days", len(list))
	}
	if ForDate(base.Add(3)) != list[3] {
		t.Fatalf("day 3 must map to the fourth prompt")
	}
}
