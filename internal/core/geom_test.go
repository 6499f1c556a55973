package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "frog beside car",
			a:        NewRectF(355, 400, 30, 30),
			b:        NewRectF(385, 400, 40, 40),
			expected: false,
		},
		{
			name:     "negative coordinates",
			a:        NewRectF(-40, 0, 40, 40),
			b:        NewRectF(-10, 20, 30, 30),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != result {
				t.Errorf("Intersects() not symmetric: a.b=%v b.a=%v", result, resultReverse)
			}
		})
	}
}

func TestRectFIntersectsSymmetrySweep(t *testing.T) {
	base := NewRectF(100, 100, 30, 30)
	for dx := -50.0; dx <= 50; dx += 2.5 {
		for dy := -50.0; dy <= 50; dy += 2.5 {
			other := NewRectF(100+dx, 100+dy, 40, 20)
			if base.Intersects(other) != other.Intersects(base) {
				t.Fatalf("asymmetric result at offset (%v, %v)", dx, dy)
			}
		}
	}
}

func TestRectFContainsPoint(t *testing.T) {
	r := NewRectF(10, 50, 70, 10)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 30, 55, true},
		{"top-left corner", 10, 50, true},
		{"bottom-right corner (inclusive)", 80, 60, true},
		{"outside left", 9.9, 55, false},
		{"outside right", 80.1, 55, false},
		{"outside top", 30, 49, false},
		{"outside bottom", 30, 61, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsPoint(tc.x, tc.y); got != tc.expected {
				t.Errorf("ContainsPoint(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
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

	f := NewRectF(1.5, 2, 3, 4.5)
	if f.Right() != 4.5 || f.Bottom() != 6.5 {
		t.Errorf("RectF edges = (%v, %v), expected (4.5, 6.5)", f.Right(), f.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
