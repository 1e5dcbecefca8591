package spark

import (
	"math"
	"net/url"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := ParseOptions(url.Values{})
	if err != nil {
		t.Fatal(err)
	}
	if opts != DefaultOptions() {
		t.Errorf("got %+v, want %+v", opts, DefaultOptions())
	}
	if opts.heightOr(defaultDiscreteHeight) != 14 || opts.heightOr(defaultSmoothHeight) != 20 {
		t.Error("wrong default heights")
	}
}

func TestParseOptions(t *testing.T) {
	q, err := url.ParseQuery("type=smooth&width=5&height=30&upper=-3" +
		"&below-color=blue&above-color=green&limits=-10,10&step=7" +
		"&min-color=navy&max-color=orange&last-color=purple" +
		"&min-m=true&max-m=false&last-m=true")
	if err != nil {
		t.Fatal(err)
	}
	opts, err := ParseOptions(q)
	if err != nil {
		t.Fatal(err)
	}
	want := Options{
		Style:      Smooth,
		Width:      5,
		Height:     30,
		Upper:      -3,
		BelowColor: "blue",
		AboveColor: "green",
		Limits:     Limits{Min: -10, Max: 10},
		Step:       7,
		MinColor:   "navy",
		MaxColor:   "orange",
		LastColor:  "purple",
		MinMarker:  true,
		LastMarker: true,
	}
	if opts != want {
		t.Errorf("got %+v, want %+v", opts, want)
	}
}

func TestParseOptionsFallback(t *testing.T) {
	q, err := url.ParseQuery("width=0&height=-4&upper=high&step=x" +
		"&limits=1,2,3&min-m=yes&max-m=TRUE&last-m=1")
	if err != nil {
		t.Fatal(err)
	}
	opts, err := ParseOptions(q)
	if err != nil {
		t.Fatal(err)
	}
	if opts != DefaultOptions() {
		t.Errorf("got %+v, want %+v", opts, DefaultOptions())
	}
}

func TestParseOptionsImpulse(t *testing.T) {
	opts, err := ParseOptions(url.Values{"type": {"impulse"}})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Style != Impulse || !opts.LongLines {
		t.Errorf("got style %s, long lines %t", opts.Style, opts.LongLines)
	}
}

func TestParseOptionsUnknownStyle(t *testing.T) {
	_, err := ParseOptions(url.Values{"type": {"pie"}})
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("got %v, want ErrUnknownStyle", err)
	}
}

func TestParseLimits(t *testing.T) {
	type testCase struct {
		in   string
		want Limits
		ok   bool
	}
	cases := []testCase{
		{"0,100", Limits{0, 100}, true},
		{"-5, 5", Limits{-5, 5}, true},
		{"50,50", Limits{50, 50}, true},
		{"", Limits{}, false},
		{"7", Limits{}, false},
		{"a,b", Limits{}, false},
		{"1,", Limits{}, false},
		{"1,2,3", Limits{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseLimits(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseLimits(%q) = %v, %t, want %v, %t", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLimits(t *testing.T) {
	if got := (Limits{Min: 50, Max: 10}).Normalized(); got != (Limits{50, 50}) {
		t.Errorf("Normalized() = %v", got)
	}
	if got := (Limits{Min: 0, Max: 10}).Normalized(); got != (Limits{0, 10}) {
		t.Errorf("Normalized() = %v", got)
	}

	l := Limits{Min: -1, Max: 1}
	for v, want := range map[int]bool{-2: false, -1: true, 0: true, 1: true, 2: false} {
		if l.Contains(v) != want {
			t.Errorf("Contains(%d) = %t", v, !want)
		}
	}
}

// TestScaleMonotonic checks that larger values never map to lower
// positions on the canvas.
func TestScaleMonotonic(t *testing.T) {
	for _, lim := range []Limits{{0, 100}, {-50, 50}, {-1000, -900}, {3, 4}} {
		sc := newScale(2, 0, 14, 10, lim, 14)
		prev := sc.apply(0, lim.Min)
		for v := lim.Min + 1; v <= lim.Max; v++ {
			p := sc.apply(0, v)
			if p.Y > prev.Y {
				t.Fatalf("%v: y(%d) = %g > y(%d) = %g", lim, v, p.Y, v-1, prev.Y)
			}
			prev = p
		}
	}
}

func TestScale(t *testing.T) {
	sc := newScale(3, 1, 17, 16, Limits{0, 100}, 20)
	p := sc.apply(2, 0)
	if p.X != 7 || p.Y != 17 {
		t.Errorf("apply(2, 0) = %v", p)
	}

	// points may lie outside the canvas, drawing clips them
	if p := sc.apply(0, 1000); p.Y >= 0 {
		t.Errorf("apply(0, 1000).Y = %g, want < 0", p.Y)
	}
	if p := sc.apply(0, -1000); p.Y <= 19 {
		t.Errorf("apply(0, -1000).Y = %g, want > 19", p.Y)
	}

	// the minimum of a discrete plot maps to the row below the canvas
	disc := newScale(2, 0, 14, 10, Limits{0, 100}, 14)
	if p := disc.apply(0, 0); p.Y != 14 {
		t.Errorf("disc.apply(0, 0).Y = %g, want 14", p.Y)
	}

	// a degenerate range maps everything to the bottom row
	flat := newScale(3, 1, 17, 16, Limits{50, 50}, 20)
	for _, v := range []int{-100, 0, 50, 100} {
		if p := flat.apply(1, v); p.Y != 19 || p.X != 4 {
			t.Errorf("flat.apply(1, %d) = %v", v, p)
		}
	}
}

// TestScaleFullRange checks that limits spanning all of int do not
// overflow.
func TestScaleFullRange(t *testing.T) {
	sc := newScale(2, 1, 17, 16, Limits{math.MinInt, math.MaxInt}, 20)
	lo := sc.apply(0, math.MinInt)
	mid := sc.apply(1, 0)
	hi := sc.apply(2, math.MaxInt)
	if lo.Y != 17 {
		t.Errorf("lowest value at y = %g, want 17", lo.Y)
	}
	if !(mid.Y > 8.5 && mid.Y < 9.5) {
		t.Errorf("zero at y = %g, want about 9", mid.Y)
	}
	if !(hi.Y > 0.5 && hi.Y < 1.5) {
		t.Errorf("highest value at y = %g, want about 1", hi.Y)
	}
	if hi.X != 5 {
		t.Errorf("x = %g, want 5", hi.X)
	}
}
