package notifier

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Antonboom/deriv-rise-fall-bot/internal/botconfig"
	"github.com/Antonboom/deriv-rise-fall-bot/internal/clients/telegram"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/notifier_generated.go -package notifiermocks Sender

const (
	EnvBotToken = "TELEGRAM_BOT_TOKEN"
	EnvChatID   = "TELEGRAM_CHAT_ID"

	reasonNotConfigured = "Telegram not configured"
	reasonEventDisabled = "notification disabled"
)

type Sender interface {
	SendMessage(ctx context.Context, req telegram.SendMessageRequest) (telegram.Response, error)
}

// Notifier formats bot lifecycle and trade events and delivers them to one Telegram chat.
// Whether it is enabled is decided once, at construction.
type Notifier struct {
	token   telegram.Token
	chatID  telegram.ChatID
	enabled bool

	sender  Sender
	baseURL string
	timeout time.Duration

	toggles *botconfig.NotificationSettings
	console io.Writer
	now     func() time.Time
	logger  zerolog.Logger
}

type Option func(n *Notifier)

// WithSender replaces the Telegram client, e.g. with a mock.
func WithSender(s Sender) Option {
	return func(n *Notifier) {
		n.sender = s
	}
}

func WithBaseURL(u string) Option {
	return func(n *Notifier) {
		n.baseURL = u
	}
}

func WithTimeout(d time.Duration) Option {
	return func(n *Notifier) {
		n.timeout = d
	}
}

// WithConsole sets where disabled-mode messages and connection test results are printed.
func WithConsole(w io.Writer) Option {
	return func(n *Notifier) {
		n.console = w
	}
}

func WithClock(now func() time.Time) Option {
	return func(n *Notifier) {
		n.now = now
	}
}

// WithToggles mutes the events switched off in settings.
func WithToggles(settings botconfig.NotificationSettings) Option {
	return func(n *Notifier) {
		n.toggles = &settings
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(n *Notifier) {
		n.logger = l
	}
}

// New resolves the credentials from the arguments, then from the TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID environment variables, then falls back to the placeholders.
// The notifier is enabled only when neither credential is a placeholder.
func New(token, chatID string, opts ...Option) *Notifier {
	n := &Notifier{
		token:   telegram.Token(resolve(token, EnvBotToken, botconfig.PlaceholderBotToken)),
		chatID:  telegram.ChatID(resolve(chatID, EnvChatID, botconfig.PlaceholderChatID)),
		baseURL: telegram.DefaultBaseURL,
		timeout: telegram.DefaultTimeout,
		console: os.Stdout,
		now:     time.Now,
		logger:  log.With().Str("component", "notifier").Logger(),
	}
	n.enabled = n.token.S() != botconfig.PlaceholderBotToken && n.chatID.S() != botconfig.PlaceholderChatID

	for _, o := range opts {
		o(n)
	}

	if n.enabled && n.sender == nil {
		client, err := telegram.NewClient(n.token, telegram.WithBaseURL(n.baseURL), telegram.WithTimeout(n.timeout))
		if err != nil {
			n.logger.Err(err).Msg("cannot create telegram client, notifications disabled")
			n.enabled = false
		} else {
			n.sender = client
		}
	}

	return n
}

// FromSettings builds a notifier from the bot configuration. Disabled settings give a
// disabled notifier regardless of the environment. Event toggles are always applied.
func FromSettings(settings botconfig.NotificationSettings, opts ...Option) *Notifier {
	token, chatID := settings.BotToken, settings.ChatID
	if !settings.Enabled {
		token, chatID = botconfig.PlaceholderBotToken, botconfig.PlaceholderChatID
	}
	return New(token, chatID, append([]Option{WithToggles(settings)}, opts...)...)
}

func resolve(explicit, envKey, placeholder string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return placeholder
}

func (n *Notifier) Enabled() bool { return n.enabled }

func (n *Notifier) ChatID() telegram.ChatID { return n.chatID }

type SendOption func(req *telegram.SendMessageRequest)

// WithParseMode overrides the default HTML parse mode of a single message.
func WithParseMode(mode telegram.ParseMode) SendOption {
	return func(req *telegram.SendMessageRequest) {
		req.ParseMode = mode
	}
}

// SendMessage delivers text, as HTML unless WithParseMode says otherwise. It never fails:
// a disabled notifier echoes the text to the console and reports "Telegram not configured",
// a transport failure is reported as {"ok": false, "error": ...}, any API reply is returned unchanged.
func (n *Notifier) SendMessage(ctx context.Context, text string, opts ...SendOption) telegram.Response {
	return n.send(ctx, eventMessage, text, opts...)
}

func (n *Notifier) notify(ctx context.Context, ev event, text string) telegram.Response {
	if !n.eventEnabled(ev) {
		collectMessage(ev, resultSkipped)
		n.logger.Debug().Str("event", string(ev)).Msg("event notifications switched off")
		return telegram.Failure(reasonEventDisabled)
	}
	return n.send(ctx, ev, text)
}

func (n *Notifier) send(ctx context.Context, ev event, text string, opts ...SendOption) telegram.Response {
	if !n.enabled {
		fmt.Fprintf(n.console, "[TELEGRAM DISABLED] %s\n", text)
		collectMessage(ev, resultDisabled)
		return telegram.Failure(reasonNotConfigured)
	}

	logger := n.logger.With().
		Str("notification_id", uuid.NewString()).
		Str("event", string(ev)).
		Logger()

	req := telegram.SendMessageRequest{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: telegram.ParseModeHTML,
	}
	for _, o := range opts {
		o(&req)
	}

	resp, err := n.sender.SendMessage(ctx, req)
	if err != nil {
		collectMessage(ev, resultFailed)
		logger.Err(err).Msg("send notification")
		return telegram.Failure(err.Error())
	}

	if !resp.OK() {
		collectMessage(ev, resultRejected)
		logger.Warn().Str("reason", resp.Reason()).Msg("notification rejected")
		return resp
	}

	collectMessage(ev, resultOK)
	logger.Debug().Msg("notification sent")
	return resp
}

// TestConnection sends one test message and prints the outcome to the console.
func (n *Notifier) TestConnection(ctx context.Context) bool {
	if !n.enabled {
		fmt.Fprintf(n.console, "Telegram is not configured. Please set %s and %s.\n", EnvBotToken, EnvChatID)
		return false
	}

	resp := n.send(ctx, eventTest, "🔔 Test notification from Deriv Rise/Fall Bot Pro")
	if resp.OK() {
		fmt.Fprintln(n.console, "✅ Telegram connection successful!")
		return true
	}

	reason := resp.Reason()
	if reason == "" {
		reason = "Unknown error"
	}
	fmt.Fprintf(n.console, "❌ Telegram connection failed: %s\n", reason)
	return false
}
