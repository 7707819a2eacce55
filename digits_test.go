package amount

import (
	"strings"
	"testing"
)

func TestSplitDigits(t *testing.T) {
	tests := []struct {
		s, wantInt, wantFrac string
	}{
		{"1000.12345678", "1 000", "12 345 678"},
		{"1.12345678", "1", "12 345 678"},
		{"0.12345678", "0", "12 345 678"},
		{"0.00000001", "0", "00 000 001"},
		{"1", "1", "00 000 000"},
		{"5100.00000000", "5 100", "00 000 000"},
		{"1000.1", "1 000", "10 000 000"},
		{"1000.101", "1 000", "10 100 000"},

		// Integer grouping
		{"0", "0", "00 000 000"},
		{"12", "12", "00 000 000"},
		{"123", "123", "00 000 000"},
		{"1234", "1 234", "00 000 000"},
		{"123456", "123 456", "00 000 000"},
		{"1234567", "1 234 567", "00 000 000"},
		{"21000000", "21 000 000", "00 000 000"},
		{"92233720368", "92 233 720 368", "00 000 000"},

		// Fractional padding
		{"0.", "0", "00 000 000"},
		{"0.5", "0", "50 000 000"},
		{"0.05", "0", "05 000 000"},
		{"0.0001", "0", "00 010 000"},
		{"0.1234567", "0", "12 345 670"},

		// Longer fractions are never truncated
		{"0.123456789", "0", "123 456 789"},
		{"0.1234567891", "0", "1 234 567 891"},
	}
	for _, tt := range tests {
		gotInt, gotFrac := SplitDigits(tt.s)
		if gotInt != tt.wantInt || gotFrac != tt.wantFrac {
			t.Errorf("SplitDigits(%q) = (%q, %q), want (%q, %q)", tt.s, gotInt, gotFrac, tt.wantInt, tt.wantFrac)
		}
	}
}

func TestSplitDigits_Scale(t *testing.T) {
	tests := []struct {
		s                 string
		scale             int
		wantInt, wantFrac string
	}{
		{"1", 0, "1", ""},
		{"150000", 0, "150 000", ""},
		{"1.5", 5, "1", "50 000"},
		{"12.34", 2, "12", "34"},
		{"0.1", 2, "0", "10"},
		{"1000", 2, "1 000", "00"},
	}
	for _, tt := range tests {
		gotInt, gotFrac := splitDigits(tt.s, tt.scale)
		if gotInt != tt.wantInt || gotFrac != tt.wantFrac {
			t.Errorf("splitDigits(%q, %v) = (%q, %q), want (%q, %q)", tt.s, tt.scale, gotInt, gotFrac, tt.wantInt, tt.wantFrac)
		}
	}
}

func FuzzSplitDigits(f *testing.F) {
	f.Add("1000.12345678")
	f.Add("0.00000001")
	f.Add("1")
	f.Add("5100.00000000")
	f.Add("1000.1")
	f.Add("123456789012.123456789")

	f.Fuzz(func(t *testing.T, s string) {
		// Only non-negative decimals with at most one point are in the domain.
		intpart, fracpart, _ := strings.Cut(s, ".")
		if intpart == "" || !isDigits(intpart) || !isDigits(fracpart) {
			t.Skip()
		}

		gotInt, gotFrac := SplitDigits(s)

		checkGroups(t, s, gotInt)
		checkGroups(t, s, gotFrac)

		if got := strings.ReplaceAll(gotInt, " ", ""); got != intpart {
			t.Errorf("SplitDigits(%q) integer digits = %q, want %q", s, got, intpart)
		}
		want := fracpart
		for len(want) < FracDigits {
			want += "0"
		}
		if got := strings.ReplaceAll(gotFrac, " ", ""); got != want {
			t.Errorf("SplitDigits(%q) fractional digits = %q, want %q", s, got, want)
		}
	})
}

// checkGroups verifies that only the most significant group may be shorter
// than three digits, and that groups are separated by single spaces.
func checkGroups(t *testing.T, s, grouped string) {
	t.Helper()
	if strings.TrimSpace(grouped) != grouped {
		t.Errorf("SplitDigits(%q) part %q has leading or trailing spaces", s, grouped)
	}
	groups := strings.Split(grouped, " ")
	for i, g := range groups {
		switch {
		case g == "":
			t.Errorf("SplitDigits(%q) part %q has an empty group", s, grouped)
		case !isDigits(g):
			t.Errorf("SplitDigits(%q) part %q has a non-digit group %q", s, grouped, g)
		case i == 0 && len(g) > 3:
			t.Errorf("SplitDigits(%q) part %q has a leading group %q longer than 3", s, grouped, g)
		case i > 0 && len(g) != 3:
			t.Errorf("SplitDigits(%q) part %q has an inner group %q of length %v", s, grouped, g, len(g))
		}
	}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
