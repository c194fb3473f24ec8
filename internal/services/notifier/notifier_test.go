package notifier_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antonboom/deriv-rise-fall-bot/internal/botconfig"
	"github.com/Antonboom/deriv-rise-fall-bot/internal/clients/telegram"
	"github.com/Antonboom/deriv-rise-fall-bot/internal/services/notifier"
	notifiermocks "github.com/Antonboom/deriv-rise-fall-bot/internal/services/notifier/mocks"
)

const (
	token  = "123456:ABC-DEF"
	chatID = "-100500"
)

var fixedNow = time.Date(2024, time.March, 8, 14, 5, 9, 0, time.UTC)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(notifier.EnvBotToken, "")
	t.Setenv(notifier.EnvChatID, "")
}

func newOptions(console io.Writer, opts ...notifier.Option) []notifier.Option {
	return append([]notifier.Option{
		notifier.WithConsole(console),
		notifier.WithClock(func() time.Time { return fixedNow }),
		notifier.WithLogger(zerolog.Nop()),
	}, opts...)
}

func TestNew_CredentialsResolution(t *testing.T) {
	cases := []struct {
		name       string
		token      string
		chatID     string
		envToken   string
		envChatID  string
		expEnabled bool
		expChatID  telegram.ChatID
	}{
		{
			name:       "nothing configured",
			expEnabled: false,
			expChatID:  botconfig.PlaceholderChatID,
		},
		{
			name:       "explicit",
			token:      token,
			chatID:     chatID,
			expEnabled: true,
			expChatID:  chatID,
		},
		{
			name:       "environment",
			envToken:   token,
			envChatID:  "42",
			expEnabled: true,
			expChatID:  "42",
		},
		{
			name:       "explicit wins over environment",
			token:      token,
			chatID:     chatID,
			envToken:   "1:X",
			envChatID:  "42",
			expEnabled: true,
			expChatID:  chatID,
		},
		{
			name:       "token only",
			token:      token,
			expEnabled: false,
			expChatID:  botconfig.PlaceholderChatID,
		},
		{
			name:       "explicit placeholders",
			token:      botconfig.PlaceholderBotToken,
			chatID:     botconfig.PlaceholderChatID,
			envToken:   token,
			envChatID:  chatID,
			expEnabled: false,
			expChatID:  botconfig.PlaceholderChatID,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(notifier.EnvBotToken, tt.envToken)
			t.Setenv(notifier.EnvChatID, tt.envChatID)

			n := notifier.New(tt.token, tt.chatID, newOptions(io.Discard)...)
			assert.Equal(t, tt.expEnabled, n.Enabled())
			assert.Equal(t, tt.expChatID, n.ChatID())
		})
	}
}

func TestFromSettings_DisabledIgnoresEnvironment(t *testing.T) {
	t.Setenv(notifier.EnvBotToken, token)
	t.Setenv(notifier.EnvChatID, chatID)

	n := notifier.FromSettings(botconfig.DefaultNotifications(), newOptions(io.Discard)...)
	assert.False(t, n.Enabled())
}

func TestNotifier_Disabled(t *testing.T) {
	clearEnv(t)

	ctrl := gomock.NewController(t)
	sender := notifiermocks.NewMockSender(ctrl) // No calls expected.

	var console bytes.Buffer
	n := notifier.New("", "", newOptions(&console, notifier.WithSender(sender))...)

	resp := n.SendMessage(context.Background(), "hello")
	assert.Equal(t, telegram.Response{"ok": false, "error": "Telegram not configured"}, resp)
	assert.Equal(t, "[TELEGRAM DISABLED] hello\n", console.String())

	console.Reset()
	resp = n.SendWinAlert(context.Background(), 0.95, 3.5, 1003.5, 7)
	assert.False(t, resp.OK())
	assert.Contains(t, console.String(), "[TELEGRAM DISABLED] \n✅ <b>WIN TRADE #7</b>")
}

func TestNotifier_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifiermocks.NewMockSender(ctrl)

	ctx := context.Background()
	apiResp := telegram.Response{"ok": true, "result": map[string]any{"message_id": float64(1)}}

	sender.EXPECT().
		SendMessage(ctx, telegram.SendMessageRequest{
			ChatID:    chatID,
			Text:      "<b>hi</b>",
			ParseMode: telegram.ParseModeHTML,
		}).
		Return(apiResp, nil)

	var console bytes.Buffer
	n := notifier.New(token, chatID, newOptions(&console, notifier.WithSender(sender))...)
	require.True(t, n.Enabled())

	assert.Equal(t, apiResp, n.SendMessage(ctx, "<b>hi</b>"))
	assert.Empty(t, console.String())
}

func TestNotifier_SendMessage_ParseMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifiermocks.NewMockSender(ctrl)

	ok := telegram.Response{"ok": true}
	gomock.InOrder(
		sender.EXPECT().
			SendMessage(gomock.Any(), telegram.SendMessageRequest{
				ChatID:    chatID,
				Text:      "*bold*",
				ParseMode: telegram.ParseModeMarkdown,
			}).
			Return(ok, nil),
		sender.EXPECT().
			SendMessage(gomock.Any(), telegram.SendMessageRequest{
				ChatID:    chatID,
				Text:      "<b>bold</b>",
				ParseMode: telegram.ParseModeHTML,
			}).
			Return(ok, nil),
	)

	n := notifier.New(token, chatID, newOptions(io.Discard, notifier.WithSender(sender))...)

	ctx := context.Background()
	assert.Equal(t, ok, n.SendMessage(ctx, "*bold*", notifier.WithParseMode(telegram.ParseModeMarkdown)))
	assert.Equal(t, ok, n.SendMessage(ctx, "<b>bold</b>"))
}

func TestNotifier_SendMessage_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifiermocks.NewMockSender(ctrl)

	apiResp := telegram.Response{"ok": false, "error_code": float64(400), "description": "Bad Request: chat not found"}
	sender.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(apiResp, nil)

	n := notifier.New(token, chatID, newOptions(io.Discard, notifier.WithSender(sender))...)
	assert.Equal(t, apiResp, n.SendMessage(context.Background(), "x"))
}

func TestNotifier_SendMessage_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifiermocks.NewMockSender(ctrl)

	sender.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	n := notifier.New(token, chatID, newOptions(io.Discard, notifier.WithSender(sender))...)
	assert.Equal(t,
		telegram.Response{"ok": false, "error": "connection refused"},
		n.SendMessage(context.Background(), "x"))
}

func TestNotifier_Toggles(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifiermocks.NewMockSender(ctrl)

	settings := botconfig.DefaultNotifications()
	settings.Enabled = true
	settings.BotToken = token
	settings.ChatID = chatID
	settings.NotifyOnWin = false
	settings.SendSessionSummary = false

	ok := telegram.Response{"ok": true}
	sender.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(ok, nil).Times(3)

	n := notifier.FromSettings(settings, newOptions(io.Discard, notifier.WithSender(sender))...)
	require.True(t, n.Enabled())

	ctx := context.Background()
	muted := telegram.Response{"ok": false, "error": "notification disabled"}

	assert.Equal(t, muted, n.SendWinAlert(ctx, 1, 1, 101, 1))
	assert.Equal(t, muted, n.SendSessionSummary(ctx, notifier.SessionStats{}))

	assert.Equal(t, ok, n.SendLossAlert(ctx, -1, 0, 99, 2, 1, 2))
	// Safety alerts have no toggle.
	assert.Equal(t, ok, n.SendMaxLossesReached(ctx, 5, 5, 90))
	// Plain messages bypass toggles.
	assert.Equal(t, ok, n.SendMessage(ctx, "custom"))
}

func TestNotifier_TestConnection(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		clearEnv(t)

		var console bytes.Buffer
		n := notifier.New("", "", newOptions(&console)...)

		assert.False(t, n.TestConnection(context.Background()))
		assert.Equal(t,
			"Telegram is not configured. Please set TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID.\n",
			console.String())
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := notifiermocks.NewMockSender(ctrl)
		sender.EXPECT().
			SendMessage(gomock.Any(), telegram.SendMessageRequest{
				ChatID:    chatID,
				Text:      "🔔 Test notification from Deriv Rise/Fall Bot Pro",
				ParseMode: telegram.ParseModeHTML,
			}).
			Return(telegram.Response{"ok": true}, nil)

		var console bytes.Buffer
		n := notifier.New(token, chatID, newOptions(&console, notifier.WithSender(sender))...)

		assert.True(t, n.TestConnection(context.Background()))
		assert.Equal(t, "✅ Telegram connection successful!\n", console.String())
	})

	t.Run("api failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := notifiermocks.NewMockSender(ctrl)
		sender.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
			Return(telegram.Response{"ok": false, "description": "Unauthorized"}, nil)

		var console bytes.Buffer
		n := notifier.New(token, chatID, newOptions(&console, notifier.WithSender(sender))...)

		assert.False(t, n.TestConnection(context.Background()))
		assert.Equal(t, "❌ Telegram connection failed: Unauthorized\n", console.String())
	})

	t.Run("failure without reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := notifiermocks.NewMockSender(ctrl)
		sender.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(telegram.Response{"ok": false}, nil)

		var console bytes.Buffer
		n := notifier.New(token, chatID, newOptions(&console, notifier.WithSender(sender))...)

		assert.False(t, n.TestConnection(context.Background()))
		assert.Equal(t, "❌ Telegram connection failed: Unknown error\n", console.String())
	})
}

func TestNotifier_RealClient(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":7}}`)
	}))
	defer srv.Close()

	n := notifier.New(token, chatID, newOptions(io.Discard,
		notifier.WithBaseURL(srv.URL),
		notifier.WithTimeout(time.Second),
	)...)

	resp := n.SendMessage(context.Background(), "ping")
	assert.True(t, resp.OK())
	assert.Equal(t, "/bot"+token+"/sendMessage", gotPath)
}
