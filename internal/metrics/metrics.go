package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Discord Metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelCommand},
	)

	CommandErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandErrorsTotal,
			Help: HelpTextCommandErrorsTotal,
		},
		[]string{LabelCommand},
	)

	DMsSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDMsSentTotal,
			Help: HelpTextDMsSentTotal,
		},
	)

	DMFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDMFailuresTotal,
			Help: HelpTextDMFailuresTotal,
		},
	)
)

// Matching Metrics
var (
	MatchRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchRunsTotal,
			Help: HelpTextMatchRunsTotal,
		},
	)

	MatchRunFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchRunFailuresTotal,
			Help: HelpTextMatchRunFailuresTotal,
		},
	)

	MatchAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameMatchAttempts,
			Help:    HelpTextMatchAttempts,
			Buckets: MatchAttemptBuckets,
		},
	)

	MatchSwapsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchSwapsTotal,
			Help: HelpTextMatchSwapsTotal,
		},
	)

	MatchFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchFallbacksTotal,
			Help: HelpTextMatchFallbacksTotal,
		},
	)

	MatchUnmatchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchUnmatchedTotal,
			Help: HelpTextMatchUnmatchedTotal,
		},
	)
)

// Feature Metrics
var (
	WeatherUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWeatherUpdatesTotal,
			Help: HelpTextWeatherUpdatesTotal,
		},
	)

	BlightTicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBlightTicksTotal,
			Help: HelpTextBlightTicksTotal,
		},
	)
)
