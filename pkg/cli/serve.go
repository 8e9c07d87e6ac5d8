package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/flowreach/flowreach/pkg/cli/config"
	httpctrl "github.com/flowreach/flowreach/pkg/controller/http"
	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/service/reply"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/flowreach/flowreach/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var configPath string
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var metaCfg config.Meta
	var slackCfg config.Slack
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("FLOWREACH_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML configuration file with workspace seeds",
			Sources:     cli.EnvVars("FLOWREACH_CONFIG"),
			Destination: &configPath,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, metaCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			flushSentry, err := sentryCfg.Configure(version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure sentry")
			}
			defer flushSentry()

			var appCfg *config.AppConfig
			if configPath != "" {
				appCfg, err = config.LoadAppConfiguration(configPath)
				if err != nil {
					return goerr.Wrap(err, "failed to load app configuration")
				}
				logging.Default().Info("Loaded app configuration", "path", configPath)
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			if appCfg != nil {
				if err := seedWorkspace(ctx, repo, appCfg); err != nil {
					return goerr.Wrap(err, "failed to seed workspace")
				}
			}

			ucOpts := []usecase.Option{}

			// Initialize LLM client for auto-reply if configured
			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure gemini")
			}
			if llmClient != nil {
				replyOpts := []reply.Option{}
				if appCfg != nil && appCfg.Assistant.Tone != "" {
					replyOpts = append(replyOpts, reply.WithDefaultTone(appCfg.Assistant.Tone))
				}
				ucOpts = append(ucOpts, usecase.WithReplyService(reply.New(llmClient, replyOpts...)))
				logging.Default().Info("AI reply service enabled", "gemini", geminiCfg)
			} else {
				logging.Default().Info("Gemini not configured, AI replies are disabled")
			}

			// Initialize Graph API client for WhatsApp / Messenger delivery
			if metaClient := metaCfg.Configure(); metaClient != nil {
				ucOpts = append(ucOpts, usecase.WithMetaClient(metaClient))
				logging.Default().Info("Meta Graph API client enabled", "meta", metaCfg)
			} else {
				logging.Default().Info("Meta channels not configured, WhatsApp and Messenger delivery is disabled")
			}

			// Initialize Slack service if bot token is provided
			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize slack service")
			}
			if slackSvc != nil {
				ucOpts = append(ucOpts, usecase.WithSlackService(slackSvc))
				logging.Default().Info("Slack service enabled", "slack", slackCfg)
			}

			uc := usecase.New(repo, ucOpts...)
			uc.WarmupKB(ctx)

			httpOpts := []httpctrl.Options{}
			if metaCfg.WebhookEnabled() {
				httpOpts = append(httpOpts, httpctrl.WithMetaWebhook(metaCfg.VerifyToken()))
				logging.Default().Info("Meta webhook endpoint enabled")
			}
			if slackCfg.IsWebhookConfigured() {
				httpOpts = append(httpOpts, httpctrl.WithSlackWebhook(slackCfg.SigningSecret()))
				logging.Default().Info("Slack webhook endpoint enabled")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}

// seedWorkspace applies the profile and campaign seeds from the app
// configuration. Seeds only fill empty stores; existing data wins.
func seedWorkspace(ctx context.Context, repo interfaces.Repository, cfg *config.AppConfig) error {
	if !cfg.Profile.IsEmpty() {
		current, err := repo.Profile().Get(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to load business profile")
		}
		if current.Name == "" {
			profile := &model.BusinessProfile{
				Name:      cfg.Profile.Name,
				About:     cfg.Profile.About,
				Tone:      cfg.Profile.Tone,
				OwnerName: cfg.Profile.OwnerName,
				UpdatedAt: time.Now().UTC(),
			}
			if err := repo.Profile().Put(ctx, profile); err != nil {
				return goerr.Wrap(err, "failed to seed business profile")
			}
			logging.Default().Info("Seeded business profile", "name", profile.Name)
		}
	}

	if len(cfg.Campaigns) == 0 {
		return nil
	}

	existing, err := repo.Campaign().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list campaigns")
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, seed := range cfg.Campaigns {
		campaign := &model.Campaign{
			ID:          types.NewCampaignID(),
			Name:        seed.Name,
			Description: seed.Description,
			Status:      types.CampaignStatus(seed.Status).Normalize(),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := repo.Campaign().Create(ctx, campaign); err != nil {
			return goerr.Wrap(err, "failed to seed campaign", goerr.V("name", seed.Name))
		}
	}
	logging.Default().Info("Seeded campaigns", "count", len(cfg.Campaigns))

	return nil
}
