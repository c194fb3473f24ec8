package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const subsystem = "notifier"

const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultFailed   = "failed"
	resultDisabled = "disabled"
	resultSkipped  = "skipped"
)

var messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "risefall_bot",
	Subsystem: subsystem,
	Name:      "messages_total",
	Help:      "Notifications by event and delivery result",
}, []string{"event", "result"})

func collectMessage(ev event, result string) {
	messagesTotal.With(prometheus.Labels{"event": string(ev), "result": result}).Inc()
}
