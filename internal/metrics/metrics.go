package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DinogenRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dinogen_request_duration_seconds",
		Help:    "Duration of Dinogen account API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	DinogenRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dinogen_requests_total",
		Help: "Total number of Dinogen account API requests",
	}, []string{"endpoint", "status"})

	CommandsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_commands_total",
		Help: "Total number of Discord slash commands handled",
	}, []string{"command", "status"})

	SnapshotsArchived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leaderboard_snapshots_archived_total",
		Help: "The total number of leaderboard snapshots written to the archive",
	})
)
