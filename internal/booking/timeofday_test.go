package booking

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"14:00", 840, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:30", 0, true},
		{"09:3", 0, true},
		{"0930", 0, true},
		{"09-30", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
		{" 9:30", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	tests := []struct {
		value TimeOfDay
		want  string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{840, "14:00"},
		{1439, "23:59"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("TimeOfDay(%d).String() = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     TimeOfDay
		want                           bool
	}{
		{"identical", 840, 900, 840, 900, true},
		{"partial front", 840, 900, 870, 930, true},
		{"partial back", 870, 930, 840, 900, true},
		{"contained", 840, 960, 870, 900, true},
		{"touching end to start", 840, 900, 900, 960, false},
		{"touching start to end", 900, 960, 840, 900, false},
		{"disjoint", 840, 900, 960, 1020, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("overlaps(%d, %d, %d, %d) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}
