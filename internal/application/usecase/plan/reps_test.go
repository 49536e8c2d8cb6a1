package plan

import "testing"

func TestParseRepRange(t *testing.T) {
	tests := []struct {
		name    string
		reps    string
		wantMin int
		wantMax int
	}{
		{"range", "8-12", 8, 12},
		{"range with spaces", "8 - 12", 8, 12},
		{"plain number", "10", 10, 10},
		{"unparseable plain value falls back to 8", "many", 8, 8},
		{"empty string falls back to 8", "", 8, 8},
		{"unparseable range min falls back to 1", "x-12", 1, 12},
		{"unparseable range max falls back to min", "8-x", 8, 8},
		{"fully unparseable range", "x-y", 1, 1},
		{"zero is not a valid rep count", "0", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := ParseRepRange(tt.reps)
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf("ParseRepRange(%q) = (%d, %d), expected (%d, %d)",
					tt.reps, gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}
