package dto

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"whole amount", "30", 3000, false},
		{"two decimal places", "30.00", 3000, false},
		{"one decimal place", "0.5", 50, false},
		{"cents", "0.01", 1, false},
		{"zero", "0", 0, false},
		{"negative", "-12.50", -1250, false},
		{"large amount", "1000000.99", 100000099, false},
		{"too many decimal places", "1.005", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{3000, "30.00"},
		{1, "0.01"},
		{0, "0.00"},
		{-1250, "-12.50"},
		{100000099, "1000000.99"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.minor); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.minor, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, minor := range []int64{0, 1, 99, 100, 12345, -500} {
		parsed, err := ParseAmount(FormatAmount(minor))
		if err != nil {
			t.Fatalf("round trip failed for %d: %v", minor, err)
		}
		if parsed != minor {
			t.Errorf("round trip %d -> %d", minor, parsed)
		}
	}
}
