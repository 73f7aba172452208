package canvas

import "testing"

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		dim     int
		wantErr bool
	}{
		{"minimum", 1, false},
		{"maximum", 100, false},
		{"typical", 16, false},
		{"zero", 0, true},
		{"negative", -3, true},
		{"too large", 101, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDimension(tc.dim)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateDimension(%d) error = %v, wantErr %v", tc.dim, err, tc.wantErr)
			}
		})
	}
}

func TestNewRejectsBadDimension(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("New(0) should fail")
	}
	if _, err := New(101); err == nil {
		t.Error("New(101) should fail")
	}

	cv, err := New(8)
	if err != nil {
		t.Fatalf("New(8) failed: %v", err)
	}
	if cv.Dimension() != 8 {
		t.Errorf("Dimension() = %d, expected 8", cv.Dimension())
	}
}

func TestCanvasSetGet(t *testing.T) {
	cv, err := New(10)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	c := C(3, 4)
	if _, set := cv.ColorAt(c); set {
		t.Error("fresh cell should be unset")
	}

	color := RGB{R: 240, G: 240, B: 240}
	cv.SetColor(c, color)

	got, set := cv.ColorAt(c)
	if !set {
		t.Fatal("cell should be set after SetColor")
	}
	if got != color {
		t.Errorf("ColorAt(%v) = %v, expected %v", c, got, color)
	}

	cv.Unset(c)
	if _, set := cv.ColorAt(c); set {
		t.Error("cell should be unset after Unset")
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	cv, _ := New(5)

	outside := []Coord{C(-1, 0), C(0, -1), C(5, 0), C(0, 5), C(7, 7)}
	for _, c := range outside {
		if cv.InBounds(c) {
			t.Errorf("InBounds(%v) = true, expected false", c)
		}
		// Writes outside the canvas must not panic or alter state
		cv.SetColor(c, RGB{R: 1, G: 2, B: 3})
		if _, set := cv.ColorAt(c); set {
			t.Errorf("ColorAt(%v) reported set for out-of-bounds cell", c)
		}
	}

	if cv.PaintedCount() != 0 {
		t.Errorf("PaintedCount() = %d after out-of-bounds writes, expected 0", cv.PaintedCount())
	}
}

func TestCanvasPaintedCoords(t *testing.T) {
	cv, _ := New(4)
	cv.SetColor(C(2, 0), RGB{R: 10, G: 20, B: 30})
	cv.SetColor(C(1, 3), RGB{R: 40, G: 50, B: 60})

	coords := cv.PaintedCoords()
	if len(coords) != 2 {
		t.Fatalf("PaintedCoords() returned %d coords, expected 2", len(coords))
	}
	// Row-major order: (2,0) before (1,3)
	if !coords[0].Equal(C(2, 0)) || !coords[1].Equal(C(1, 3)) {
		t.Errorf("PaintedCoords() = %v, expected [(2,0) (1,3)]", coords)
	}
}

func TestCanvasCloneEqual(t *testing.T) {
	cv, _ := New(6)
	cv.SetColor(C(1, 1), RGB{R: 100, G: 150, B: 200})

	clone := cv.Clone()
	if !cv.Equal(clone) {
		t.Error("clone should equal original")
	}

	clone.SetColor(C(2, 2), RGB{R: 5, G: 5, B: 5})
	if cv.Equal(clone) {
		t.Error("mutating clone should not affect original")
	}
	if _, set := cv.ColorAt(C(2, 2)); set {
		t.Error("original canvas was mutated through clone")
	}
}
