package config

import (
	"log/slog"

	"github.com/flowreach/flowreach/pkg/service/meta"
	"github.com/urfave/cli/v3"
)

// Meta holds configuration for the Meta Graph API (WhatsApp Cloud and
// Messenger)
type Meta struct {
	whatsAppToken string
	phoneNumberID string
	pageToken     string
	verifyToken   string
}

func (x *Meta) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "whatsapp-token",
			Category:    "Meta",
			Usage:       "WhatsApp Cloud API access token",
			Sources:     cli.EnvVars("FLOWREACH_WHATSAPP_TOKEN"),
			Destination: &x.whatsAppToken,
		},
		&cli.StringFlag{
			Name:        "whatsapp-phone-number-id",
			Category:    "Meta",
			Usage:       "WhatsApp Cloud API phone number ID",
			Sources:     cli.EnvVars("FLOWREACH_WHATSAPP_PHONE_NUMBER_ID"),
			Destination: &x.phoneNumberID,
		},
		&cli.StringFlag{
			Name:        "messenger-page-token",
			Category:    "Meta",
			Usage:       "Messenger page access token",
			Sources:     cli.EnvVars("FLOWREACH_MESSENGER_PAGE_TOKEN"),
			Destination: &x.pageToken,
		},
		&cli.StringFlag{
			Name:        "meta-verify-token",
			Category:    "Meta",
			Usage:       "Webhook challenge verify token",
			Sources:     cli.EnvVars("FLOWREACH_META_VERIFY_TOKEN"),
			Destination: &x.verifyToken,
		},
	}
}

func (x Meta) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("whatsapp-token.len", len(x.whatsAppToken)),
		slog.String("phone-number-id", x.phoneNumberID),
		slog.Int("page-token.len", len(x.pageToken)),
		slog.Int("verify-token.len", len(x.verifyToken)),
	)
}

// VerifyToken returns the webhook challenge verify token
func (x *Meta) VerifyToken() string {
	return x.verifyToken
}

// WebhookEnabled reports whether the Meta webhook endpoints should be
// registered
func (x *Meta) WebhookEnabled() bool {
	return x.verifyToken != ""
}

// Configure creates a Graph API client, or nil when no channel is
// configured.
func (x *Meta) Configure() *meta.Client {
	var opts []meta.Option
	if x.whatsAppToken != "" && x.phoneNumberID != "" {
		opts = append(opts, meta.WithWhatsApp(x.whatsAppToken, x.phoneNumberID))
	}
	if x.pageToken != "" {
		opts = append(opts, meta.WithMessenger(x.pageToken))
	}
	if len(opts) == 0 {
		return nil
	}
	return meta.New(opts...)
}
