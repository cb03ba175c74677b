package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimeMarshalJSONUsesMillis(t *testing.T) {
	ts := NewTime(time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.FixedZone("EET", 2*3600)))
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-01-15T08:30:00.123Z"` {
		t.Fatalf("unexpected encoding %s", b)
	}
}

func TestTimeUnmarshalJSON(t *testing.T) {
	var ts Time
	if err := json.Unmarshal([]byte(`"2024-01-15T08:30:00Z"`), &ts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !ts.Equal(time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", ts.Time)
	}

	keep := ts
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}
	if !ts.Equal(keep.Time) {
		t.Fatal("null should keep the existing value")
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatal("expected parse error")
	}
}
