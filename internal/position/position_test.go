package position

import "testing"

func TestPositionString(t *testing.T) {
	p := New(10, 2, 5)
	if got, want := p.String(), "line 2, column 5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPositionIsValid(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"start of input", New(0, 1, 1), true},
		{"mid input", New(42, 3, 7), true},
		{"zero line", Position{Offset: 0, Line: 0, Column: 1}, false},
		{"zero column", Position{Offset: 0, Line: 1, Column: 0}, false},
		{"negative offset", Position{Offset: -1, Line: 1, Column: 1}, false},
	}

	for _, tt := range tests {
		if got := tt.pos.IsValid(); got != tt.want {
			t.Errorf("%s: IsValid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPositionOrdering(t *testing.T) {
	a := New(3, 1, 4)
	b := New(9, 2, 1)

	if !a.Before(b) {
		t.Errorf("expected %v before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("expected %v after %v", b, a)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("position should not order before/after itself")
	}
}
