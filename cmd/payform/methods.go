package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-payform/pkg/components"
	"github.com/goliatone/go-payform/pkg/payment"
)

func methodsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "methods [file]",
		Short: "List payment methods and whether a form component supports them",
		Long: `Reads a payment methods document (JSON or YAML) of the form
{"paymentMethods": [{"type": "mbway", "name": "MB WAY"}]} and reports which
entries have a registered form component. The file defaults to methods_file
from the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			path := cfg.MethodsFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("methods: no methods file given")
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("methods: %w", err)
			}
			methods, err := payment.DecodeMethods(data)
			if err != nil {
				return err
			}

			registry := components.Default()
			supported, unsupported := registry.Supports(methods)
			logger.Debug("methods decoded",
				zap.String("file", path),
				zap.Int("supported", len(supported)),
				zap.Int("unsupported", len(unsupported)),
			)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tNAME\tFORM")
			for _, method := range methods {
				method = method.Normalized()
				form := "no"
				if registry.Has(method.Type) {
					form = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", method.Type, method.Name, form)
			}
			return w.Flush()
		},
	}
}
