// seehuhn.de/go/spark - sparkline images over HTTP
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"cmp"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"seehuhn.de/go/spark"
)

// Request validation errors.  All of them lead to status 400.
var (
	errNoData        = errors.New("no data supplied")
	errMalformed     = errors.New("data malformed")
	errOutOfRange    = errors.New("data out of range")
	errTooManyPoints = errors.New("too many data points")
	errTooLarge      = errors.New("image too large")
)

// ParseSeries parses the comma-separated integers of the "d" query
// parameter.
// Empty items are skipped.
func ParseSeries(s string) ([]int, error) {
	var series []int
	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		v, err := strconv.Atoi(item)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "item %q", item), errMalformed)
		}
		series = append(series, v)
	}
	if len(series) == 0 {
		return nil, errNoData
	}
	return series, nil
}

// CheckRange verifies that all values lie within the limits.  The limits
// are used as given, without normalization.
func CheckRange(series []int, lim spark.Limits) error {
	for i, v := range series {
		if !lim.Contains(v) {
			return errors.Wrapf(errOutOfRange, "value %d at index %d outside [%d, %d]",
				v, i, lim.Min, lim.Max)
		}
	}
	return nil
}

// queryLimits returns the "limits" parameter, or the default limits if
// the parameter is missing or malformed.
func queryLimits(q url.Values) spark.Limits {
	if lim, ok := spark.ParseLimits(q.Get("limits")); ok {
		return lim
	}
	return spark.DefaultLimits
}

// styleLabel returns the name of the requested plot style for use in
// metrics, or "unknown".
func styleLabel(q url.Values) string {
	style, err := spark.ParseStyle(cmp.Or(q.Get("type"), spark.Discrete.String()))
	if err != nil {
		return "unknown"
	}
	return style.String()
}

// reasons lists the messages sent to clients for failed requests.
var reasons = []struct {
	err error
	msg string
}{
	{errNoData, "No data supplied"},
	{errMalformed, "Data malformed"},
	{errOutOfRange, "Data out of range"},
	{errTooManyPoints, "Too many data points"},
	{errTooLarge, "Image too large"},
	{spark.ErrUnknownStyle, "Unknown plot type"},
	{spark.ErrUnknownColor, "Unknown color"},
	{spark.ErrEmptySeries, "No data supplied"},
	{spark.ErrInvalidSize, "Invalid image size"},
}

// classify returns the HTTP status and the message for a failed request.
func classify(err error) (int, string) {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return http.StatusBadRequest, r.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
