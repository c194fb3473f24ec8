package botconfig

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const subsystem = "config"

const (
	operationLoad = "load"
	operationSave = "save"

	resultOK     = "ok"
	resultFailed = "failed"
)

var operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "risefall_bot",
	Subsystem: subsystem,
	Name:      "operations_total",
	Help:      "Config file operations by result",
}, []string{"operation", "result"})

func collectOperation(operation, result string) {
	operationsTotal.With(prometheus.Labels{"operation": operation, "result": result}).Inc()
}
