package dom

import "testing"

func TestSizeEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Size
		want bool
	}{
		{"same", Size{Width: 100, Height: 50}, Size{Width: 100, Height: 50}, true},
		{"zero", Size{}, Size{}, true},
		{"width-differs", Size{Width: 100, Height: 50}, Size{Width: 101, Height: 50}, false},
		{"height-differs", Size{Width: 100, Height: 50}, Size{Width: 100, Height: 51}, false},
		{"both-differ", Size{Width: 1, Height: 2}, Size{Width: 2, Height: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Equality is symmetric.
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestSizeString(t *testing.T) {
	s := Size{Width: 80, Height: 24}
	if got := s.String(); got != "80x24" {
		t.Errorf("String() = %q, want %q", got, "80x24")
	}
}
