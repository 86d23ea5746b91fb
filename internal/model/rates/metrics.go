package rates

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pullsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "grocerybot",
		Subsystem: "rates",
		Name:      "pulls_total",
	},
	[]string{"status"},
)

func observePull(ok bool) {
	status := "ok"
	if !ok {
		status = "failed"
	}
	pullsTotal.WithLabelValues(status).Inc()
}
