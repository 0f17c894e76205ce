// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	processedRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carafe_http_requests_total",
		Help: "Total number of HTTP requests dispatched",
	},
		[]string{"code", "method"},
	)

	requestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "carafe_http_requests_in_flight",
		Help: "The number of HTTP requests currently being processed",
	})
)

func init() {
	prometheus.MustRegister(processedRequests)
	prometheus.MustRegister(requestsInFlight)
}

func countRequest(status int, method string) {
	processedRequests.WithLabelValues(strconv.Itoa(status), method).Inc()
}
