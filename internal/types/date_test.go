package types

import (
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-07-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.July || d.Day() != 1 {
		t.Fatalf("parsed %v", d)
	}

	// RFC 3339 timestamps are tolerated; time of day is discarded.
	d, err = ParseDate("2024-07-01T15:04:05Z")
	if err != nil {
		t.Fatalf("ParseDate rfc3339: %v", err)
	}
	if d.Hour() != 0 || d.Day() != 1 {
		t.Fatalf("time of day not discarded: %v", d)
	}

	if _, err := ParseDate("01.07.2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ParseDate(""); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate for empty string, got %v", err)
	}
}

func TestDateJSON(t *testing.T) {
	var p Person
	if err := json.Unmarshal([]byte(`{"id":1,"name":"Mia","birthdate":"2015-06-15"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Birthdate.String() != "2015-06-15" {
		t.Fatalf("birthdate = %q", p.Birthdate)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"id":1,"name":"Mia","birthdate":"2015-06-15"}` {
		t.Fatalf("marshalled %s", out)
	}

	var q Person
	if err := json.Unmarshal([]byte(`{"id":2,"name":"X","birthdate":null}`), &q); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !q.Birthdate.IsZero() {
		t.Fatalf("null birthdate should be zero")
	}

	if err := json.Unmarshal([]byte(`{"birthdate":"garbage"}`), &q); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUnixTimeJSON(t *testing.T) {
	var plan Plan
	if err := json.Unmarshal([]byte(`{"id":1,"name":"P","created_at":1714557600}`), &plan); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if plan.CreatedAt.Unix() != 1714557600 {
		t.Fatalf("created_at = %v", plan.CreatedAt)
	}
}
