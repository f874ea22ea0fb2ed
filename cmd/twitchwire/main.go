package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"twitchwire/internal/adapters/config"
	"twitchwire/internal/adapters/healthcheck"
	"twitchwire/internal/adapters/logging"
	"twitchwire/internal/adapters/transport"
	"twitchwire/internal/application"
	"twitchwire/internal/irc"
	"twitchwire/internal/ports"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var (
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	nickStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	chanStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile       string
		transportName string
		logLevel      string
		healthPort    int
	)

	cmd := &cobra.Command{
		Use:           "twitchwire",
		Short:         "Read and send Twitch chat over raw IRC",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := godotenv.Load(envFile); err != nil {
				log.Printf("[WARN] Could not load .env from %s: %v", envFile, err)
			}
			// Flags win over environment.
			if transportName != "" {
				_ = os.Setenv("TRANSPORT", transportName)
			}
			if logLevel != "" {
				_ = os.Setenv("LOG_LEVEL", logLevel)
			}
			if healthPort > 0 {
				_ = os.Setenv("HEALTH_PORT", fmt.Sprintf("%d", healthPort))
			}
			return run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "path to the .env file")
	cmd.Flags().StringVar(&transportName, "transport", "", "stream transport: tcp or ws")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().IntVar(&healthPort, "health-port", 0, "port for the /health endpoint, 0 disables")

	return cmd
}

func run(ctx context.Context) error {
	store, err := config.NewEnvStore()
	if err != nil {
		return err
	}
	cfg := store.GetConfig()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := logging.NewFromString(cfg.LogLevel)
	logger.Infof(ctx, "twitchwire %s (commit: %s, built: %s)", version, commit, buildDate)

	var dialer ports.Dialer
	switch cfg.Transport {
	case "ws":
		dialer = transport.NewWSDialer()
	default:
		dialer = transport.NewTCPDialer()
	}

	session := application.NewSessionService(store, dialer, logger)
	session.OnEvent(printEvent)

	if cfg.HealthPort > 0 {
		health := healthcheck.NewHealthServer(cfg.HealthPort, session, logger)
		if err := health.Start(ctx); err != nil {
			logger.Errorf(ctx, "starting health server: %v", err)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- session.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Infof(ctx, "shutting down...")
	case err := <-errChan:
		if err != nil {
			logger.Errorf(ctx, "session error: %v", err)
			session.Stop()
			return err
		}
		logger.Infof(ctx, "stream closed")
	}

	session.Stop()
	return nil
}

func printEvent(ev irc.Event) {
	nick := "-"
	if ev.Nickname != nil {
		nick = *ev.Nickname
	}
	var text string
	if ev.Message != nil {
		text = *ev.Message
	}
	fmt.Printf("%-12s %s %s %s\n",
		kindStyle.Render(ev.Kind.String()),
		chanStyle.Render("#"+ev.Channel),
		nickStyle.Render(nick),
		textStyle.Render(text),
	)
}
