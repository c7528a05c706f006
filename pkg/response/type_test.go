package response

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateMarshal(t *testing.T) {
	d := Date(time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2024-03-15"` {
		t.Errorf("got %s, want \"2024-03-15\"", b)
	}
}

func TestDateTimeMarshal(t *testing.T) {
	t.Run("formats as date and time", func(t *testing.T) {
		d := DateTime(time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC))
		b, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `"2024-03-15 10:30:45"` {
			t.Errorf("got %s, want \"2024-03-15 10:30:45\"", b)
		}
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		loc := time.FixedZone("WIB", 7*3600)
		d := DateTime(time.Date(2024, 3, 15, 7, 0, 0, 0, loc))
		b, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `"2024-03-15 00:00:00"` {
			t.Errorf("got %s, want midnight UTC", b)
		}
	})
}
