package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"last cell", 29, 24, true},
		{"right edge is exclusive", 30, 15, false},
		{"bottom edge is exclusive", 15, 25, false},
		{"left of rect", 9, 15, false},
		{"above rect", 15, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(20, 10, 8, 4)
	if r != NewRect(16, 8, 8, 4) {
		t.Errorf("CenteredRect() = %+v", r)
	}
	if x, y := r.Center(); x != 20 || y != 10 {
		t.Errorf("Center() = (%d, %d), want (20, 10)", x, y)
	}
}

func TestRectInner(t *testing.T) {
	if got := NewRect(2, 3, 18, 10).Inner(); got != NewRect(3, 4, 16, 8) {
		t.Errorf("Inner() = %+v", got)
	}
	if got := NewRect(0, 0, 1, 1).Inner(); got.W != 0 || got.H != 0 {
		t.Errorf("Inner() of a 1x1 rect = %+v, want empty", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, want int
	}{
		{3, 8, 3},
		{8, 8, 0},
		{-1, 8, 7},
		{-9, 8, 7},
		{17, 8, 1},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := Wrap(tt.val, tt.n); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.val, tt.n, got, tt.want)
		}
	}
}
