package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-payform/internal/config"
	"github.com/goliatone/go-payform/internal/prompt"
	"github.com/goliatone/go-payform/internal/receipt"
	"github.com/goliatone/go-payform/pkg/analytics"
	"github.com/goliatone/go-payform/pkg/component"
	"github.com/goliatone/go-payform/pkg/components/mbway"
	"github.com/goliatone/go-payform/pkg/localization"
	"github.com/goliatone/go-payform/pkg/payment"
)

type mbwayFlags struct {
	name   string
	phone  string
	asJSON bool
}

func mbwayCmd(root *rootOptions) *cobra.Command {
	flags := mbwayFlags{}
	cmd := &cobra.Command{
		Use:   "mbway",
		Short: "Fill and submit the MB Way form",
		Long: `Presents the MB Way form in the terminal and prints the submitted payload.
With --phone the form is filled and submitted without prompting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runMBWay(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, logger, flags)
		},
	}
	cmd.Flags().StringVar(&flags.name, "name", "MB WAY", "payment method display name")
	cmd.Flags().StringVar(&flags.phone, "phone", "", "telephone number; skips the interactive prompt")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the submission as JSON instead of a receipt")
	return cmd
}

func runMBWay(ctx context.Context, out, errOut io.Writer, cfg *config.Config, logger *zap.Logger, flags mbwayFlags) error {
	bundle, err := newBundle(cfg, logger)
	if err != nil {
		return err
	}
	sink, registry, err := newSink(cfg, logger)
	if err != nil {
		return err
	}
	renderer, err := newReceiptRenderer(cfg)
	if err != nil {
		return err
	}

	method := payment.Method{Type: payment.TypeMBWay, Name: flags.name}
	comp, err := mbway.New(method,
		mbway.WithShowHeader(cfg.ShowHeader),
		mbway.WithLocalization(bundle, cfg.LocalizationParams()),
		mbway.WithPhoneDigits(cfg.Phone.MinDigits, cfg.Phone.MaxDigits),
		mbway.WithLogger(logger),
		mbway.WithControllerOptions(
			component.WithAnalytics(sink),
			component.WithEnvironment(cfg.Environment),
			component.WithHostingMode(cfg.HostingMode()),
			component.WithPayment(cfg.PaymentContext()),
		),
	)
	if err != nil {
		return err
	}

	printer := &submissionPrinter{
		out:         out,
		renderer:    renderer,
		asJSON:      flags.asJSON,
		environment: cfg.Environment,
		logger:      logger,
	}
	comp.SetDelegate(printer)
	defer comp.SetDelegate(nil)

	if flags.phone != "" {
		if err := comp.PhoneNumberItem().SetValue(flags.phone); err != nil {
			return err
		}
		if !comp.Submit() {
			container, _ := comp.Form()
			return fmt.Errorf("mbway: %s", strings.Join(container.Report().Messages(), "; "))
		}
	} else {
		presenter := prompt.New(prompt.WithLogger(logger))
		if err := presenter.Run(ctx, comp); err != nil {
			return err
		}
	}
	if printer.err != nil {
		return printer.err
	}
	if registry != nil {
		return writeMetrics(errOut, registry)
	}
	return nil
}

// submissionPrinter is the CLI's delegate: it prints each submission and
// finishes it straight away.
type submissionPrinter struct {
	out         io.Writer
	renderer    *receipt.Renderer
	asJSON      bool
	environment string
	logger      *zap.Logger
	err         error
}

func (p *submissionPrinter) DidSubmit(data payment.ComponentData, pc component.PaymentComponent) {
	p.err = p.print(data, pc.Method())
	if p.err != nil {
		p.logger.Error("print submission", zap.Error(p.err))
	}
	pc.StopLoading(p.err == nil, func() {
		p.logger.Debug("submission finished", zap.String("component", pc.Method().Type))
	})
}

func (p *submissionPrinter) print(data payment.ComponentData, method payment.Method) error {
	if p.asJSON {
		payload, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("mbway: marshal submission: %w", err)
		}
		_, err = fmt.Fprintf(p.out, "%s\n", payload)
		return err
	}
	_, err := p.renderer.Render(receipt.Receipt{
		Method:      method,
		Data:        data,
		Environment: p.environment,
		SubmittedAt: time.Now().UTC(),
	}, p.out)
	return err
}

func newBundle(cfg *config.Config, logger *zap.Logger) (*localization.Bundle, error) {
	opts := []localization.Option{localization.WithLogger(logger)}
	if dir := cfg.Localization.TablesDir; dir != "" {
		tables, err := localization.LoadTables(os.DirFS(dir))
		if err != nil {
			return nil, err
		}
		opts = append(opts, localization.WithHostTables(tables))
	}
	return localization.New(opts...)
}

func newSink(cfg *config.Config, logger *zap.Logger) (analytics.Sink, *prometheus.Registry, error) {
	logSink := analytics.SinkFunc(func(event analytics.Event) {
		logger.Debug("analytics event",
			zap.String("id", event.ID),
			zap.String("component", event.Component),
			zap.String("flavor", string(event.Flavor)),
		)
	})
	if !cfg.Metrics.Enabled {
		return logSink, nil, nil
	}

	registry := prometheus.NewRegistry()
	promSink, err := analytics.NewPrometheusSink(
		analytics.WithNamespace(cfg.Metrics.Namespace),
		analytics.WithSubsystem(cfg.Metrics.Subsystem),
		analytics.WithRegistry(registry),
		analytics.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, err
	}
	return analytics.Multi(logSink, promSink), registry, nil
}

func newReceiptRenderer(cfg *config.Config) (*receipt.Renderer, error) {
	if cfg.ReceiptFile == "" {
		return receipt.New()
	}
	return receipt.New(
		receipt.WithBaseDir(filepath.Dir(cfg.ReceiptFile)),
		receipt.WithTemplate(filepath.Base(cfg.ReceiptFile)),
	)
}

func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", family.GetName(), err)
		}
	}
	return nil
}
