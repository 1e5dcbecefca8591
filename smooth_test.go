package spark

import (
	"testing"
)

// TestSmoothFirstMinimum checks that the minimum marker is attached to
// the first of several equal minima.
func TestSmoothFirstMinimum(t *testing.T) {
	green := mustColor(t, "green")

	opts := DefaultOptions()
	opts.Style = Smooth
	opts.MinMarker = true
	c, err := Draw([]int{5, 2, 2, 5}, opts, DefaultColors)
	if err != nil {
		t.Fatal(err)
	}

	// Index 1 is at x = 3, y = 17 - 2*16/101 = 16.68, so the marker
	// covers x = 2..4 and y = 15..17.
	want := rows(
		"..........", "..........", "..........", "..........", "..........",
		"..........", "..........", "..........", "..........", "..........",
		"..........", "..........", "..........", "..........", "..........",
		"..###.....",
		"..#.#.....",
		"..###.....",
		"..........", "..........",
	)
	if got := pattern(c, green); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestSmoothFirstMaximum(t *testing.T) {
	red := mustColor(t, "red")

	opts := DefaultOptions()
	opts.Style = Smooth
	opts.MaxMarker = true
	c, err := Draw([]int{10, 90, 90, 10}, opts, DefaultColors)
	if err != nil {
		t.Fatal(err)
	}

	// y = 17 - 90*16/101 = 2.74, x = 3
	img := c.Image()
	if img.RGBAAt(2, 1) != red || img.RGBAAt(4, 3) != red {
		t.Error("maximum marker missing at index 1")
	}
	if img.RGBAAt(6, 1) == red {
		t.Error("maximum marker drawn at index 2")
	}
}

func TestSmoothLine(t *testing.T) {
	white := mustColor(t, "white")
	gray := mustColor(t, "gray")

	opts := DefaultOptions()
	opts.Style = Smooth
	c, err := Draw([]int{0, 100, 30, 60, 60}, opts, DefaultColors)
	if err != nil {
		t.Fatal(err)
	}
	used := colorsUsed(c)
	if len(used) != 2 || used[white] == 0 || used[gray] == 0 {
		t.Errorf("unexpected colors %v", used)
	}

	// every column between the first and last point is touched by the line
	for x := 1; x <= 9; x++ {
		found := false
		for y := range c.Height() {
			if c.Image().RGBAAt(x, y) == gray {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("column %d has no line pixels", x)
		}
	}
}

func TestSmoothMarkers(t *testing.T) {
	opts := DefaultOptions()
	opts.Style = Smooth
	opts.MinMarker = true
	opts.MaxMarker = true
	opts.LastMarker = true
	opts.MinColor = "navy"
	opts.MaxColor = "orange"
	opts.LastColor = "purple"
	c, err := Draw([]int{40, 0, 100, 70}, opts, DefaultColors)
	if err != nil {
		t.Fatal(err)
	}
	used := colorsUsed(c)
	for _, name := range []string{"navy", "orange", "purple"} {
		if used[mustColor(t, name)] != 8 {
			t.Errorf("%s: %d pixels, want 8", name, used[mustColor(t, name)])
		}
	}
}

func TestSmoothSingleValue(t *testing.T) {
	blue := mustColor(t, "blue")

	opts := DefaultOptions()
	opts.Style = Smooth
	opts.LastMarker = true
	c, err := Draw([]int{42}, opts, DefaultColors)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width() != 4 || c.Height() != 20 {
		t.Fatalf("got %dx%d, want 4x20", c.Width(), c.Height())
	}
	// y = 17 - 42*16/101 = 10.35
	if c.Image().RGBAAt(0, 9) != blue || c.Image().RGBAAt(2, 11) != blue {
		t.Error("last value marker missing")
	}
}

func TestSmoothDegenerateRange(t *testing.T) {
	white := mustColor(t, "white")
	gray := mustColor(t, "gray")

	opts := DefaultOptions()
	opts.Style = Smooth
	opts.Limits = Limits{Min: 50, Max: 50}
	c, err := Draw([]int{50, 50, 50}, opts, DefaultColors)
	if err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	for x := 1; x <= 5; x++ {
		if img.RGBAAt(x, 19) != gray {
			t.Errorf("pixel (%d, 19) is not on the line", x)
		}
		if img.RGBAAt(x, 18) != white {
			t.Errorf("pixel (%d, 18) is not background", x)
		}
	}
}

func TestSmoothUnknownMarkerColor(t *testing.T) {
	opts := DefaultOptions()
	opts.Style = Smooth
	opts.LastColor = "no-such-color"
	if _, err := Draw([]int{1, 2}, opts, DefaultColors); err == nil {
		t.Error("unknown color accepted")
	}
}
