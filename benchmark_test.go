package spark

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"net/url"
	"slices"
	"testing"

	"seehuhn.de/go/spark/testcases"
)

// BenchmarkRender benchmarks rendering and PNG encoding for series of
// different lengths.
func BenchmarkRender(b *testing.B) {
	sizes := []int{10, 100, 1000}
	styles := []Style{Discrete, Impulse, Smooth}

	for _, style := range styles {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/%d", style, size), func(b *testing.B) {
				rng := rand.New(rand.NewPCG(1, uint64(size)))
				series := make([]int, size)
				for i := range series {
					series[i] = rng.IntN(101)
				}
				opts := DefaultOptions()
				opts.Style = style
				opts.MinMarker = true
				opts.MaxMarker = true
				opts.LastMarker = true

				b.ReportAllocs()
				for b.Loop() {
					if _, err := Render(series, opts, DefaultColors); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkDrawAll measures drawing without PNG encoding, across all
// test cases.
func BenchmarkDrawAll(b *testing.B) {
	type prepared struct {
		series []int
		opts   Options
	}
	var cases []prepared
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			q, err := url.ParseQuery(tc.Query)
			if err != nil {
				b.Fatal(err)
			}
			opts, err := ParseOptions(q)
			if err != nil {
				b.Fatal(err)
			}
			cases = append(cases, prepared{tc.Series, opts})
		}
	}

	b.ResetTimer()
	for b.Loop() {
		for _, tc := range cases {
			if _, err := Draw(tc.series, tc.opts, DefaultColors); err != nil {
				b.Fatal(err)
			}
		}
	}
}
