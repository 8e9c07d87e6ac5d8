package config_test

import (
	"testing"

	"github.com/flowreach/flowreach/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestMeta_Configure(t *testing.T) {
	t.Run("returns nil client when no channel is configured", func(t *testing.T) {
		cfg := config.NewMetaForTest("", "", "", "")
		gt.Value(t, cfg.Configure()).Nil()
	})

	t.Run("returns client when WhatsApp is configured", func(t *testing.T) {
		cfg := config.NewMetaForTest("wa-token", "123456", "", "")
		gt.Value(t, cfg.Configure()).NotNil()
	})

	t.Run("returns client when Messenger is configured", func(t *testing.T) {
		cfg := config.NewMetaForTest("", "", "page-token", "")
		gt.Value(t, cfg.Configure()).NotNil()
	})

	t.Run("whatsapp token without phone number ID is ignored", func(t *testing.T) {
		cfg := config.NewMetaForTest("wa-token", "", "", "")
		gt.Value(t, cfg.Configure()).Nil()
	})
}

func TestMeta_WebhookEnabled(t *testing.T) {
	gt.B(t, config.NewMetaForTest("", "", "", "").WebhookEnabled()).False()
	gt.B(t, config.NewMetaForTest("", "", "", "secret-token").WebhookEnabled()).True()
}
