package dividend

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-10", NewDate(2024, 1, 10), false},
		{"2024-1-5", NewDate(2024, 1, 5), false},
		{"2024-06-10T00:00:00Z", NewDate(2024, 6, 10), false},
		{"", Date{}, true},
		{"not a date", Date{}, true},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, 1, 31)
	if got := d.Add(1); got != NewDate(2024, 2, 1) {
		t.Errorf("Add(1) = %v, want 2024-02-01", got)
	}
	if got := NewDate(2024, 12, 31).Add(1); got != NewDate(2025, 1, 1) {
		t.Errorf("year rollover = %v, want 2025-01-01", got)
	}
	if d.MonthIndex() != 0 {
		t.Errorf("MonthIndex of January = %d, want 0", d.MonthIndex())
	}
	if !NewDate(2024, 1, 1).Before(NewDate(2024, 1, 2)) {
		t.Error("Before is wrong")
	}
}

func TestDateJSON(t *testing.T) {
	type doc struct {
		On Date `json:"on"`
	}
	out, err := json.Marshal(doc{On: NewDate(2024, 3, 5)})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"on":"2024-03-05"}` {
		t.Errorf("marshal = %s", out)
	}
	var in doc
	if err := json.Unmarshal(out, &in); err != nil {
		t.Fatal(err)
	}
	if in.On != NewDate(2024, 3, 5) {
		t.Errorf("unmarshal = %v", in.On)
	}
}

func TestDateOfToday(t *testing.T) {
	now := time.Now()
	today := Today()
	if today.Year() != now.Year() || today.Month() != now.Month() || today.Day() != now.Day() {
		t.Errorf("Today() = %v, want %v", today, now)
	}
}
