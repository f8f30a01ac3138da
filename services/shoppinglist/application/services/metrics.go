package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listkeeper_shopping_lists_created_total",
		Help: "Number of shopping lists created",
	})

	checkoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listkeeper_shopping_list_checkouts_total",
		Help: "Number of shopping lists closed via checkout",
	})

	rejectedMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listkeeper_shopping_list_rejected_mutations_total",
		Help: "Mutations rejected by a precondition, by operation and reason",
	}, []string{"operation", "reason"})
)
