package notifier

type event string

const (
	eventMessage     event = "message"
	eventTest        event = "test"
	eventWin         event = "win"
	eventLoss        event = "loss"
	eventStart       event = "start"
	eventStop        event = "stop"
	eventTakeProfit  event = "take_profit"
	eventStopLoss    event = "stop_loss"
	eventMaxLosses   event = "max_losses"
	eventLowBalance  event = "low_balance"
	eventSummary     event = "session_summary"
	eventErrorReport event = "error"
)

// eventEnabled reports whether the configured toggles allow ev.
// Safety alerts have no toggle and are always sent.
func (n *Notifier) eventEnabled(ev event) bool {
	t := n.toggles
	if t == nil {
		return true
	}

	switch ev {
	case eventWin:
		return t.NotifyOnWin
	case eventLoss:
		return t.NotifyOnLoss
	case eventStart:
		return t.NotifyOnStart
	case eventStop:
		return t.NotifyOnStop
	case eventTakeProfit:
		return t.NotifyOnTakeProfit
	case eventStopLoss:
		return t.NotifyOnStopLoss
	case eventSummary:
		return t.SendSessionSummary
	}
	return true
}
