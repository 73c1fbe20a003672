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
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "shared vertical edge",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "shared horizontal edge",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "shared corner only",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 5, 5),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := RectFrom(V2(5, 10), V2(20, 15))

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	moved := r.Translate(-5, 2)
	if moved.X != 0 || moved.Y != 12 || moved.W != 20 || moved.H != 15 {
		t.Errorf("Translate() = %+v", moved)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	v := V2(1, 2).Add(V2(0.5, -1)).Scale(2)
	if v.X != 3 || v.Y != 2 {
		t.Errorf("got (%v, %v), expected (3, 2)", v.X, v.Y)
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
