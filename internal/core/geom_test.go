package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "fully inside",
			a:        NewRect(112, 372, 15, 15),
			b:        NewRect(100, 360, 80, 200),
			expected: true,
		},
		{
			name:     "entirely to the left",
			a:        NewRect(0, 0, 15, 15),
			b:        NewRect(40, 0, 80, 200),
			expected: false,
		},
		{
			name:     "touching left edge",
			a:        NewRect(25, 0, 15, 15),
			b:        NewRect(40, 0, 80, 200),
			expected: false,
		},
		{
			name:     "touching vertically",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "empty rect never overlaps",
			a:        NewRect(5, 5, 0, 10),
			b:        NewRect(0, 0, 20, 20),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestScale(t *testing.T) {
	if got := Scale(640, 1280, 80); got != 40 {
		t.Errorf("Scale(640, 1280, 80) = %d, expected 40", got)
	}
	if got := Scale(10, 0, 80); got != 0 {
		t.Errorf("Scale with empty source range = %d, expected 0", got)
	}
}
