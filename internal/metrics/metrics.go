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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	BattlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesTotal,
			Help: HelpTextBattlesTotal,
		},
		[]string{LabelContext, LabelOutcome},
	)

	BattleRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBattleRounds,
			Help:    HelpTextBattleRounds,
			Buckets: BattleRoundBuckets,
		},
	)

	MonstersSlain = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMonstersSlain,
			Help: HelpTextMonstersSlain,
		},
		[]string{LabelMonster},
	)

	ExperienceGained = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExperienceGained,
			Help: HelpTextExperienceGained,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	PlayerLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlayerLevel,
			Help: HelpTextPlayerLevel,
		},
	)

	ItemsFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsFound,
			Help: HelpTextItemsFound,
		},
		[]string{LabelTier, LabelKept},
	)
)
