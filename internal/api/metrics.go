// SPDX-License-Identifier: MIT

package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	configReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seqconf_config_reloads_total",
		Help: "Number of configuration reload attempts by result",
	}, []string{"result"})

	lastReloadTime = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "seqconf_last_reload_timestamp",
		Help: "Timestamp of the last successful configuration reload (Unix timestamp)",
	})

	resolveRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seqconf_resolve_requests_total",
		Help: "Number of profile resolution requests by outcome",
	}, []string{"outcome"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seqconf_http_requests_total",
		Help: "Number of HTTP requests by method and status",
	}, []string{"method", "status"})

	httpRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "seqconf_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2.0, 12), // 1ms .. ~4s
	})
)

func recordReload(err error) {
	if err != nil {
		configReloadsTotal.WithLabelValues("failure").Inc()
		return
	}
	configReloadsTotal.WithLabelValues("success").Inc()
	lastReloadTime.Set(float64(time.Now().Unix()))
}

func recordResolve(outcome string) {
	resolveRequestsTotal.WithLabelValues(outcome).Inc()
}
