// Package metrics exposes Prometheus counters and gauges for the economy
// core, served on the API's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicksTotal counts timer ticks by kind ("mining", "boost", "refresh").
	TicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lumen_ticks_total",
		Help: "Timer ticks processed, by kind.",
	}, []string{"kind"})

	// RewardsTotal counts discrete reward grants by source.
	RewardsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lumen_rewards_total",
		Help: "Discrete reward grants, by source.",
	}, []string{"source"})

	// RewardAmount sums granted LSN by source.
	RewardAmount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lumen_reward_lsn_total",
		Help: "Total LSN granted, by source.",
	}, []string{"source"})

	// RejectionsTotal counts rejected user actions by reason code.
	RejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lumen_rejections_total",
		Help: "Rejected user actions, by reason code.",
	}, []string{"code"})

	// BoostActivations counts successful boost activations.
	BoostActivations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lumen_boost_activations_total",
		Help: "Successful boost activations.",
	})

	// Balance mirrors the current LSN balance.
	Balance = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lumen_balance_lsn",
		Help: "Current LSN balance.",
	})
)
