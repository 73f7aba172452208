package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(4, 2, 20, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 10, 5, true},
		{"top-left corner", 4, 2, true},
		{"bottom-right edge (exclusive)", 24, 12, false},
		{"outside left", 3, 5, false},
		{"outside right", 30, 5, false},
		{"outside top", 10, 1, false},
		{"outside bottom", 10, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.2, 0, 1, 0},
		{1.3, 0, 1, 1},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		val, expected int
	}{
		{5, 5},
		{-5, 5},
		{0, 0},
	}

	for _, tc := range tests {
		result := Abs(tc.val)
		if result != tc.expected {
			t.Errorf("Abs(%d) = %d, expected %d", tc.val, result, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		val, expected int
	}{
		{7, 1},
		{-3, -1},
		{0, 0},
	}

	for _, tc := range tests {
		result := Sign(tc.val)
		if result != tc.expected {
			t.Errorf("Sign(%d) = %d, expected %d", tc.val, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 {
		t.Errorf("Min(3, 7) = %d, expected 3", Min(3, 7))
	}
	if Min(7, 3) != 3 {
		t.Errorf("Min(7, 3) = %d, expected 3", Min(7, 3))
	}
	if Max(3, 7) != 7 {
		t.Errorf("Max(3, 7) = %d, expected 7", Max(3, 7))
	}
	if Max(7, 3) != 7 {
		t.Errorf("Max(7, 3) = %d, expected 7", Max(7, 3))
	}
}
