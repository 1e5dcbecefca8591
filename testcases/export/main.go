// Command export renders all test cases to PNG files and writes an index
// of the cases to JSON.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"

	"seehuhn.de/go/spark"
	"seehuhn.de/go/spark/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := renderPNG(tc, filepath.Join(refDir, name+".png")); err != nil {
				panic(errors.Wrap(err, name))
			}
			out.TestCases = append(out.TestCases, jsonTestCase{
				Name:   name,
				Series: tc.Series,
				Query:  tc.Query,
				Width:  tc.Width,
				Height: tc.Height,
			})
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string `json:"name"`
	Series []int  `json:"series"`
	Query  string `json:"query,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func renderPNG(tc testcases.TestCase, pngPath string) error {
	q, err := url.ParseQuery(tc.Query)
	if err != nil {
		return err
	}
	opts, err := spark.ParseOptions(q)
	if err != nil {
		return err
	}
	data, err := spark.Render(tc.Series, opts, spark.DefaultColors)
	if err != nil {
		return err
	}
	return os.WriteFile(pngPath, data, 0644)
}
