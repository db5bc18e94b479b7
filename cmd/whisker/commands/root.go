package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/janiskrasemann/whisker/internal/aggregator"
	"github.com/janiskrasemann/whisker/internal/config"
	"github.com/janiskrasemann/whisker/internal/diagnostics"
	"github.com/janiskrasemann/whisker/internal/fetcher"
	"github.com/janiskrasemann/whisker/internal/logging"
	"github.com/janiskrasemann/whisker/internal/mailer"
	"github.com/janiskrasemann/whisker/internal/metrics"
	"github.com/janiskrasemann/whisker/internal/renderer"
	"github.com/janiskrasemann/whisker/internal/view"
	"github.com/janiskrasemann/whisker/internal/viewmodel"
)

const defaultConfigPath = "/etc/whisker/config.yaml"

var (
	configPath string
	cfg        *config.Config
	logger     *logging.ZerologAdapter
)

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		if logger == nil {
			logger = logging.NewConsoleLogger("whisker")
		}
		logger.Error("Command failed", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "whisker",
		Short:         "A cat fact and a cat picture, delivered",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.NewConsoleLogger("whisker")

			loaded, err := config.Load(configPath)
			switch {
			case err == nil:
				cfg = loaded
			case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
				cfg = config.Default()
			default:
				return err
			}

			logging.SetLevel(cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to config file")

	root.AddCommand(onceCmd(), previewCmd(), serveCmd())
	return root
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

type app struct {
	vm       *viewmodel.ViewModel
	renderer *renderer.Renderer
	metrics  *metrics.Metrics
	// mail is nil unless email delivery is configured.
	mail *view.Mail
}

// newApp builds the full dependency graph for one command invocation.
func newApp(ctx context.Context) (*app, error) {
	m := metrics.New()

	combiner := aggregator.New(
		fetcher.NewCatFact(&http.Client{Timeout: cfg.FactAPI.Timeout}, cfg.FactAPI.BaseURL),
		fetcher.NewCatImage(&http.Client{Timeout: cfg.ImageAPI.Timeout}, cfg.ImageAPI.BaseURL, cfg.ImageAPI.APIKey),
		aggregator.WithMessages(aggregator.Messages{
			NoResponse: cfg.Messages.NoResponse,
			Generic:    cfg.Messages.Generic,
		}),
		aggregator.WithLogger(logger.With(logging.String("module", "combiner"))),
	)

	monitor := diagnostics.NewCrashMonitor(logger.With(logging.String("module", "diagnostics")), m)

	vm := viewmodel.New(ctx, combiner, monitor,
		viewmodel.WithRecorder(m),
		viewmodel.WithLogger(logger.With(logging.String("module", "viewmodel"))),
		viewmodel.WithGenericMessage(combiner.Messages().Generic),
	)

	rend, err := renderer.NewDefault()
	if err != nil {
		return nil, err
	}

	a := &app{vm: vm, renderer: rend, metrics: m}

	if cfg.Email.Enabled() {
		var header []byte
		if cfg.Email.HeaderImage != "" {
			header, err = os.ReadFile(cfg.Email.HeaderImage)
			if err != nil {
				return nil, fmt.Errorf("reading header image: %w", err)
			}
		}
		mail := mailer.New(cfg.Email.From, cfg.Email.To, cfg.Email.ResendAPIKey, header)

		mailRend, err := renderer.NewDefault()
		if err != nil {
			return nil, err
		}
		if mail.HasHeaderImage() {
			mailRend.SetHeaderCID(mailer.HeaderImageCID)
		}
		a.mail = view.NewMail(mailRend, mail, logger.With(logging.String("module", "mail")))
	}

	return a, nil
}
