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
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests       *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	notModified    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "spark",
				Name:      "requests_total",
				Help:      "Sparkline requests, labeled by plot style and status code.",
			},
			[]string{"style", "code"},
		),
		renderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "spark",
				Name:      "render_duration_seconds",
				Help:      "Time spent drawing and encoding sparklines.",
				Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"style"},
		),
		notModified: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "spark",
				Name:      "not_modified_total",
				Help:      "Requests answered with 304 Not Modified.",
			},
		),
	}
	reg.MustRegister(m.requests, m.renderDuration, m.notModified)
	return m
}
