package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tictactoe"

var (
	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Number of game sessions created.",
	})

	SessionsEnded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_ended_total",
		Help:      "Number of game sessions deleted.",
	})

	Moves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moves_total",
		Help:      "Moves submitted, by result.",
	}, []string{"result"})

	Jumps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jumps_total",
		Help:      "History jumps submitted, by result.",
	}, []string{"result"})

	Toggles = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "display_toggles_total",
		Help:      "Move list order toggles.",
	})
)

const (
	ResultApplied  = "applied"
	ResultRejected = "rejected"
)
