package http

import (
	"context"
	"net/http"

	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/flowreach/flowreach/pkg/utils/async"
	"github.com/flowreach/flowreach/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// metaChallengeHandler serves the Graph API webhook verification
// handshake
func metaChallengeHandler(verifyToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("hub.mode") == "subscribe" && q.Get("hub.verify_token") == verifyToken {
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte(q.Get("hub.challenge"))); err != nil {
				logging.From(r.Context()).Error("failed to write challenge response", "error", err)
			}
			return
		}
		http.Error(w, "verification failed", http.StatusForbidden)
	}
}

// metaEvent covers both WhatsApp Cloud and Messenger webhook payloads.
// The two products share the envelope but differ below entry.
type metaEvent struct {
	Object string `json:"object"`
	Entry  []struct {
		Changes []struct {
			Value struct {
				Contacts []struct {
					WaID    string `json:"wa_id"`
					Profile struct {
						Name string `json:"name"`
					} `json:"profile"`
				} `json:"contacts"`
				Messages []struct {
					From string `json:"from"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
					Button struct {
						Text string `json:"text"`
					} `json:"button"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
		Messaging []struct {
			Sender struct {
				ID string `json:"id"`
			} `json:"sender"`
			Message struct {
				Text   string `json:"text"`
				IsEcho bool   `json:"is_echo"`
			} `json:"message"`
		} `json:"messaging"`
	} `json:"entry"`
}

// metaWebhookHandler acks immediately and relays the extracted
// messages asynchronously, so slow completions never trigger platform
// retries.
func metaWebhookHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var event metaEvent
		if err := decodeJSON(r, &event); err != nil {
			badRequest(ctx, w, goerr.Wrap(err, "invalid webhook payload"))
			return
		}

		messages := extractMetaMessages(&event)

		w.WriteHeader(http.StatusOK)

		if len(messages) == 0 {
			return
		}

		async.Dispatch(ctx, func(ctx context.Context) error {
			uc.Webhook.HandleInbound(ctx, messages)
			return nil
		})
	}
}

func extractMetaMessages(event *metaEvent) []usecase.InboundMessage {
	var messages []usecase.InboundMessage

	switch event.Object {
	case "whatsapp_business_account":
		for _, entry := range event.Entry {
			for _, change := range entry.Changes {
				names := make(map[string]string, len(change.Value.Contacts))
				for _, c := range change.Value.Contacts {
					names[c.WaID] = c.Profile.Name
				}

				for _, msg := range change.Value.Messages {
					text := msg.Text.Body
					if text == "" {
						text = msg.Button.Text
					}
					messages = append(messages, usecase.InboundMessage{
						Channel:    types.ChannelWhatsApp,
						SenderID:   msg.From,
						SenderName: names[msg.From],
						Text:       text,
					})
				}
			}
		}

	case "page":
		for _, entry := range event.Entry {
			for _, m := range entry.Messaging {
				// Skip echoes of our own outbound messages
				if m.Message.IsEcho {
					continue
				}
				messages = append(messages, usecase.InboundMessage{
					Channel:  types.ChannelMessenger,
					SenderID: m.Sender.ID,
					Text:     m.Message.Text,
				})
			}
		}
	}

	return messages
}
