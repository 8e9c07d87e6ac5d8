package meta_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flowreach/flowreach/pkg/service/meta"
	"github.com/m-mizutani/gt"
)

func TestSendWhatsApp(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := meta.New(
		meta.WithBaseURL(server.URL),
		meta.WithWhatsApp("wa-token", "15551230000"),
	)

	gt.NoError(t, client.SendWhatsApp(t.Context(), "15559998888", "hello there"))

	gt.Value(t, gotPath).Equal("/15551230000/messages")
	gt.Value(t, gotAuth).Equal("Bearer wa-token")
	gt.Value(t, gotBody["messaging_product"]).Equal("whatsapp")
	gt.Value(t, gotBody["to"]).Equal("15559998888")
	text, ok := gotBody["text"].(map[string]any)
	gt.B(t, ok).True()
	gt.Value(t, text["body"]).Equal("hello there")
}

func TestSendMessenger(t *testing.T) {
	var gotQuery string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("access_token")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := meta.New(
		meta.WithBaseURL(server.URL),
		meta.WithMessenger("page-token"),
	)

	gt.NoError(t, client.SendMessenger(t.Context(), "psid-123", "hi"))

	gt.Value(t, gotQuery).Equal("page-token")
	recipient, ok := gotBody["recipient"].(map[string]any)
	gt.B(t, ok).True()
	gt.Value(t, recipient["id"]).Equal("psid-123")
	message, ok := gotBody["message"].(map[string]any)
	gt.B(t, ok).True()
	gt.Value(t, message["text"]).Equal("hi")
}

func TestSendNotConfigured(t *testing.T) {
	client := meta.New()

	err := client.SendWhatsApp(t.Context(), "15559998888", "hello")
	gt.B(t, errors.Is(err, meta.ErrWhatsAppNotConfigured)).True()

	err = client.SendMessenger(t.Context(), "psid-123", "hello")
	gt.B(t, errors.Is(err, meta.ErrMessengerNotConfigured)).True()
}

func TestSendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid token"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := meta.New(
		meta.WithBaseURL(server.URL),
		meta.WithWhatsApp("bad-token", "15551230000"),
	)

	gt.Error(t, client.SendWhatsApp(t.Context(), "15559998888", "hello"))
}
