package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CustomerOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custadm_customer_ops_total",
			Help: "Customer operations by operation and outcome",
		},
		[]string{"operation", "outcome"}, // create|get|list|update|delete|suspend , ok|client_error|error
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		CustomerOps,
	)
}
