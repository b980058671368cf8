package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-payform/internal/config"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

type rootOptions struct {
	configPath string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "payform",
		Short: "Declare, fill and submit payment method forms",
		Long: `payform drives payment method forms from the terminal.

It lists which payment methods have a form component and runs the MB Way
form interactively, printing the submitted payload as a receipt or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (YAML or JSON)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		methodsCmd(opts),
		mbwayCmd(opts),
		versionCmd(),
	)
	return cmd
}

func (o *rootOptions) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(o.debug || cfg.Debug), nil
}

func newLogger(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "payform %s (%s)\n", version, commit)
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")
	return cmd
}
