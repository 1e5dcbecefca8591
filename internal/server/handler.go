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
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/spark"
	"seehuhn.de/go/spark/internal/config"
)

// Handler serves sparkline images.  The query string carries the data
// ("d") and the plot options, see [spark.ParseOptions].
//
// A Handler is safe for concurrent use.
type Handler struct {
	cfg     *config.Config
	colors  *spark.ColorTable
	log     logrus.FieldLogger
	metrics *metrics
}

// NewHandler returns a handler using the given color table.  Metrics are
// registered with reg.
func NewHandler(cfg *config.Config, colors *spark.ColorTable, log logrus.FieldLogger, reg prometheus.Registerer) *Handler {
	return &Handler{
		cfg:     cfg,
		colors:  colors,
		log:     log,
		metrics: newMetrics(reg),
	}
}

// ETag returns the cache validator for a raw query string: the hex
// encoded SHA-1 hash of the query.
func ETag(rawQuery string) string {
	sum := sha1.Sum([]byte(rawQuery))
	return hex.EncodeToString(sum[:])
}

// result summarizes a request for logging and metrics.
type result struct {
	status int
	style  string
	points int
	err    error
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	res := h.serve(w, r)
	elapsed := time.Since(start)

	h.metrics.requests.WithLabelValues(res.style, strconv.Itoa(res.status)).Inc()

	entry := h.log.WithFields(logrus.Fields{
		"status":   res.status,
		"style":    res.style,
		"points":   res.points,
		"duration": elapsed,
	})
	switch {
	case res.status >= 500:
		entry.WithError(res.err).Error("request failed")
	case res.status >= 400:
		entry.WithError(res.err).Info("request rejected")
	case res.err != nil:
		entry.WithError(res.err).Warn("sent error image")
	default:
		entry.Debug("request served")
	}
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) result {
	res := result{style: "unknown"}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		res.status = http.StatusMethodNotAllowed
		res.err = errors.Newf("method %s", r.Method)
		return res
	}

	etag := ETag(r.URL.RawQuery)
	if r.Header.Get("If-None-Match") == etag {
		h.metrics.notModified.Inc()
		w.Header().Set("Etag", etag)
		w.WriteHeader(http.StatusNotModified)
		res.status = http.StatusNotModified
		return res
	}

	q := r.URL.Query()
	series, err := ParseSeries(q.Get("d"))
	if err != nil {
		return h.fail(w, res, err)
	}
	res.points = len(series)
	if len(series) > h.cfg.MaxPoints {
		return h.fail(w, res, errors.Wrapf(errTooManyPoints, "%d > %d", len(series), h.cfg.MaxPoints))
	}

	res.style = styleLabel(q)

	if err := CheckRange(series, queryLimits(q)); err != nil {
		return h.fail(w, res, err)
	}

	opts, err := spark.ParseOptions(q)
	if err != nil {
		return h.renderFailed(w, res, etag, err)
	}
	if width, height := spark.Size(len(series), opts); width > h.cfg.MaxWidth || height > h.cfg.MaxHeight {
		return h.fail(w, res, errors.Wrapf(errTooLarge, "%dx%d", width, height))
	}

	data, err := h.render(series, opts)
	if err != nil {
		return h.renderFailed(w, res, etag, err)
	}
	writePNG(w, etag, data)
	res.status = http.StatusOK
	return res
}

// render draws the sparkline and records the time taken.
func (h *Handler) render(series []int, opts spark.Options) ([]byte, error) {
	timer := prometheus.NewTimer(h.metrics.renderDuration.WithLabelValues(opts.Style.String()))
	defer timer.ObserveDuration()
	return spark.Render(series, opts, h.colors)
}

// renderFailed reports an unknown plot type or a rendering error.  If
// configured, the error image is sent instead of a text message.
func (h *Handler) renderFailed(w http.ResponseWriter, res result, etag string, err error) result {
	if !h.cfg.ErrorImage || errors.Is(err, spark.ErrEncode) {
		return h.fail(w, res, err)
	}

	opts := spark.DefaultOptions()
	opts.Style = spark.ErrorImage
	data, imgErr := h.render(nil, opts)
	if imgErr != nil {
		return h.fail(w, res, errors.CombineErrors(err, imgErr))
	}
	writePNG(w, etag, data)
	res.status = http.StatusOK
	res.err = err
	return res
}

// fail sends a plain text error response.
func (h *Handler) fail(w http.ResponseWriter, res result, err error) result {
	status, msg := classify(err)
	http.Error(w, msg, status)
	res.status = status
	res.err = err
	return res
}

func writePNG(w http.ResponseWriter, etag string, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Etag", etag)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
