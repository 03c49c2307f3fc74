package settlement

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var settlementRuns = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "settlement_runs_total",
		Help: "How many settlement runs have been executed.",
	},
)

var settlementsProcessed = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "settlements_processed_total",
		Help: "How many direct debits have been settled successfully.",
	},
)

var settlementsFailed = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "settlements_failed_total",
		Help: "How many direct debit settlements have failed, partitioned by failure kind.",
	},
	[]string{"kind"},
)
