package http_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	httpctrl "github.com/flowreach/flowreach/pkg/controller/http"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/repository/memory"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/m-mizutani/gt"
	"github.com/slack-go/slack/slackevents"
)

// computeSlackSignature computes the Slack signature for testing
func computeSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	return "v0=" + hex.EncodeToString(h.Sum(nil))
}

func TestVerifySlackSignature(t *testing.T) {
	secret := "test-secret"
	body := `{"type":"url_verification"}`
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	t.Run("valid signature", func(t *testing.T) {
		signature := computeSlackSignature(secret, timestamp, body)
		gt.NoError(t, httpctrl.VerifySlackSignature(secret, timestamp, signature, []byte(body)))
	})

	t.Run("wrong signature", func(t *testing.T) {
		gt.Error(t, httpctrl.VerifySlackSignature(secret, timestamp, "v0=deadbeef", []byte(body)))
	})

	t.Run("missing timestamp", func(t *testing.T) {
		signature := computeSlackSignature(secret, timestamp, body)
		gt.Error(t, httpctrl.VerifySlackSignature(secret, "", signature, []byte(body)))
	})

	t.Run("old timestamp", func(t *testing.T) {
		old := strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10)
		signature := computeSlackSignature(secret, old, body)
		gt.Error(t, httpctrl.VerifySlackSignature(secret, old, signature, []byte(body)))
	})
}

func postSlackEvent(t *testing.T, server *httpctrl.Server, secret, body string) *httptest.ResponseRecorder {
	t.Helper()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req := httptest.NewRequest(http.MethodPost, "/hooks/slack/event", strings.NewReader(body))
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", computeSlackSignature(secret, timestamp, body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestSlackURLVerification(t *testing.T) {
	secret := "test-secret"
	server := httpctrl.New(usecase.New(memory.New()), httpctrl.WithSlackWebhook(secret))

	body := `{"type":"url_verification","challenge":"challenge-token"}`
	rec := postSlackEvent(t, server, secret, body)

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, rec.Body.String()).Equal("challenge-token")
}

func TestSlackInvalidSignatureRejected(t *testing.T) {
	server := httpctrl.New(usecase.New(memory.New()), httpctrl.WithSlackWebhook("test-secret"))

	body := `{"type":"url_verification","challenge":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/hooks/slack/event", strings.NewReader(body))
	req.Header.Set("X-Slack-Request-Timestamp", strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set("X-Slack-Signature", "v0=invalid")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)
}

func TestSlackCallbackEventAcked(t *testing.T) {
	secret := "test-secret"
	server := httpctrl.New(usecase.New(memory.New()), httpctrl.WithSlackWebhook(secret))

	body := `{"type":"event_callback","team_id":"T123","event":{"type":"message","channel":"C123","user":"U123","text":"hello"}}`
	rec := postSlackEvent(t, server, secret, body)

	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestExtractSlackMessages(t *testing.T) {
	t.Run("plain user message", func(t *testing.T) {
		event := &slackevents.EventsAPIEvent{
			Type: slackevents.CallbackEvent,
			InnerEvent: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.MessageEvent{
					Channel: "C123",
					User:    "U123",
					Text:    "hello",
				},
			},
		}

		messages := httpctrl.ExtractSlackMessages(event)
		gt.Array(t, messages).Length(1)
		gt.Value(t, messages[0].Channel).Equal(types.ChannelSlack)
		gt.Value(t, messages[0].SenderID).Equal("C123")
		gt.Value(t, messages[0].Text).Equal("hello")
	})

	t.Run("bot message is skipped", func(t *testing.T) {
		event := &slackevents.EventsAPIEvent{
			Type: slackevents.CallbackEvent,
			InnerEvent: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.MessageEvent{
					Channel: "C123",
					BotID:   "B999",
					Text:    "bot noise",
				},
			},
		}

		gt.Array(t, httpctrl.ExtractSlackMessages(event)).Length(0)
	})

	t.Run("non-message event is skipped", func(t *testing.T) {
		event := &slackevents.EventsAPIEvent{
			Type: slackevents.CallbackEvent,
			InnerEvent: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.AppMentionEvent{Channel: "C123", Text: "hi"},
			},
		}

		gt.Array(t, httpctrl.ExtractSlackMessages(event)).Length(0)
	})
}
