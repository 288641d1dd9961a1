package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storyreel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storyreel_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	UnlocksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storyreel_unlocks_total",
			Help: "Content unit grants by entitlement reason",
		},
		[]string{"reason"},
	)

	DenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storyreel_denials_total",
			Help: "Content unit denials by reason",
		},
		[]string{"reason"},
	)

	WalletCreditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storyreel_wallet_credits_total",
			Help: "Wallet credit operations by source",
		},
		[]string{"source"},
	)

	CoinsSpentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storyreel_coins_spent_total",
			Help: "Total coins debited for unit unlocks",
		},
	)

	AdQuotaSweepDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storyreel_ad_quota_sweep_deleted_total",
			Help: "Ad-quota records purged by the daily sweep",
		},
	)

	RecorderQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storyreel_recorder_queue_length",
			Help: "Current length of the consumption-recorder queue",
		},
	)

	RecorderEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storyreel_recorder_events_total",
			Help: "Consumption events processed by the recorder",
		},
		[]string{"status"},
	)

	FeedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storyreel_feed_requests_total",
			Help: "For-you feed requests by cache outcome",
		},
		[]string{"cache"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordUnlock(reason string) {
	UnlocksTotal.WithLabelValues(reason).Inc()
}

func RecordDenial(reason string) {
	DenialsTotal.WithLabelValues(reason).Inc()
}

func RecordWalletCredit(source string) {
	WalletCreditsTotal.WithLabelValues(source).Inc()
}

func RecordCoinsSpent(amount int64) {
	CoinsSpentTotal.Add(float64(amount))
}

func RecordSweep(deleted int64) {
	AdQuotaSweepDeleted.Add(float64(deleted))
}

func RecordRecorderEvent(status string) {
	RecorderEventsTotal.WithLabelValues(status).Inc()
}

func RecordFeedRequest(cache string) {
	FeedRequestsTotal.WithLabelValues(cache).Inc()
}
