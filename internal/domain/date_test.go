package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateParseAndFormat(t *testing.T) {
	d, err := ParseDate("1990-05-20")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if d.String() != "1990-05-20" {
		t.Fatalf("unexpected format: %s", d)
	}

	if _, err := ParseDate("20.05.1990"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDateOfTruncatesTime(t *testing.T) {
	ts := time.Date(2024, 3, 15, 23, 59, 58, 0, time.UTC)
	d := DateOf(ts)
	if d.String() != "2024-03-15" {
		t.Fatalf("unexpected date: %s", d)
	}
	if !d.Time().Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected midnight UTC, got %v", d.Time())
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		BirthDate *Date `json:"birth_date"`
	}
	if err := json.Unmarshal([]byte(`{"birth_date":"1990-05-20"}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.BirthDate == nil || payload.BirthDate.String() != "1990-05-20" {
		t.Fatalf("unexpected date: %+v", payload.BirthDate)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `{"birth_date":"1990-05-20"}` {
		t.Fatalf("unexpected json: %s", out)
	}

	if err := json.Unmarshal([]byte(`{"birth_date":123}`), &payload); err == nil {
		t.Fatalf("expected unmarshal error for non-string date")
	}
}
