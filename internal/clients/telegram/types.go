package telegram

// For compile-time restrictions.

type Token string          //
func (t Token) S() string { return string(t) }

type ChatID string          //
func (id ChatID) S() string { return string(id) }

type ParseMode string

const (
	// ParseModeHTML supports the <b>, <code> and <i> tags used by the notification templates.
	ParseModeHTML     ParseMode = "HTML"
	ParseModeMarkdown ParseMode = "Markdown"
)

type SendMessageRequest struct {
	ChatID    ChatID    `json:"chat_id"`
	Text      string    `json:"text"`
	ParseMode ParseMode `json:"parse_mode"`
}

// Response is the Bot API reply, kept as received.
// By convention callers inspect the "ok" field.
type Response map[string]any

func (r Response) OK() bool {
	ok, _ := r["ok"].(bool)
	return ok
}

// Reason returns the failure text: the local "error" field or the API "description".
func (r Response) Reason() string {
	if s, ok := r["error"].(string); ok {
		return s
	}
	if s, ok := r["description"].(string); ok {
		return s
	}
	return ""
}

// Failure builds a locally produced unsuccessful response.
func Failure(reason string) Response {
	return Response{"ok": false, "error": reason}
}
