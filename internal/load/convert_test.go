package load

import "testing"

func TestNormalizeNull(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{name: "empty string", in: "", want: nil},
		{name: "whitespace only", in: "   ", want: nil},
		{name: "literal NA", in: "NA", want: nil},
		{name: "padded NA", in: " NA ", want: nil},
		{name: "regular value", in: "surfactant", want: "surfactant"},
		{name: "zero is a value", in: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeNull(tt.in); got != tt.want {
				t.Errorf("NormalizeNull(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{in: "2020-12-16", want: "2020-12-16"},
		{in: "16-12-2020", want: "2020-12-16"},
		{in: "16-Dec-20", want: "2020-12-16"},
		{in: "16-Dec-2020", want: "2020-12-16"},
		{in: "16-December-2020", want: "2020-12-16"},
		{in: "December-20", want: "2020-12-01"},
		{in: "Dec-20", want: "2020-12-01"},
		{in: "December 16, 2020", want: "2020-12-16"},
		{in: "December 2020", want: "2020-12-01"},
		{in: "2020", want: "2020-01-01"},
		{in: "16/12/2020", want: "2020-12-16"},
		{in: "12/16/2020", want: "2020-12-16"},
		{in: "16 December 2020", want: "2020-12-16"},
		{in: "12.16.2020", want: "2020-12-16"},
		{in: " 2020-12-16 ", want: "2020-12-16"},
		{in: "not a date", want: nil},
		{in: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseDate(tt.in); got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{in: "0.5", want: 0.5, wantOK: true},
		{in: "12%", want: 0.12, wantOK: true},
		{in: " 12 % ", want: 0.12, wantOK: true},
		{in: "100%", want: 1.0, wantOK: true},
		{in: "42", want: 42, wantOK: true},
		{in: "-3.5", want: -3.5, wantOK: true},
		{in: "abc", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ToFloat(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ToFloat(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ToFloat(%q) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestExplodeIdentifiers(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantFirst string
		wantAlts  []string
	}{
		{
			name:      "single identifier",
			in:        "50-00-0",
			wantFirst: "50-00-0",
			wantAlts:  nil,
		},
		{
			name:      "identifier with alternatives",
			in:        "50-00-0|FORMALDEHYDE|BFV",
			wantFirst: "50-00-0",
			wantAlts:  []string{"FORMALDEHYDE", "BFV"},
		},
		{
			name:      "whitespace trimmed",
			in:        " 50-00-0 | FORMALDEHYDE ",
			wantFirst: "50-00-0",
			wantAlts:  []string{"FORMALDEHYDE"},
		},
		{
			name:      "empty alternatives dropped",
			in:        "50-00-0||",
			wantFirst: "50-00-0",
			wantAlts:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, alts := ExplodeIdentifiers(tt.in)
			if first != tt.wantFirst {
				t.Errorf("Expected first %q, got %q", tt.wantFirst, first)
			}
			if len(alts) != len(tt.wantAlts) {
				t.Fatalf("Expected alternatives %v, got %v", tt.wantAlts, alts)
			}
			for i := range alts {
				if alts[i] != tt.wantAlts[i] {
					t.Errorf("Expected alternatives %v, got %v", tt.wantAlts, alts)
				}
			}
		})
	}
}
