package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, path and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks request latency by method and path
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// QuotePDFsGenerated counts generated quote documents
	QuotePDFsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quote_pdfs_generated_total",
			Help: "Total number of quote PDFs generated",
		},
	)

	// PublicQuoteViews counts public link opens by outcome
	PublicQuoteViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "public_quote_views_total",
			Help: "Total public quote link opens",
		},
		[]string{"outcome"},
	)
)
