package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/cardscan/pkg/contact"
	"github.com/dmitrymomot/cardscan/pkg/logger"
)

var errNoRecord = errors.New("no contact record in payload")

// parseOutput is what the parse command prints per payload.
type parseOutput struct {
	Format contact.Format  `json:"format" yaml:"format"`
	Record *contact.Record `json:"record" yaml:"record"`
	Error  string          `json:"error,omitempty" yaml:"error,omitempty"`
}

func newParseCmd() *cobra.Command {
	var (
		output  string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "parse [payload]",
		Short: "Decode a scanned payload and print the contact record",
		Long: `Decodes a MECARD, vCard or free-text payload taken from the argument or,
without one, from standard input. Exits non-zero when no record can be derived.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readPayload(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			opts := []contact.Option{}
			if verbose {
				opts = append(opts, contact.WithLogger(logger.New(
					logger.WithOutput(cmd.ErrOrStderr()),
					logger.WithLevelName("debug"),
				)))
			}
			rec, decodeErr := contact.New(opts...).Decode(raw)

			out := parseOutput{Format: contact.Detect(raw), Record: rec}
			if decodeErr != nil {
				out.Error = decodeErr.Error()
			}
			if err := writeOutput(cmd.OutOrStdout(), output, out); err != nil {
				return err
			}
			if decodeErr != nil {
				return errors.Join(errNoRecord, decodeErr)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decoder diagnostics to stderr")
	return cmd
}

func readPayload(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read payload: %w", err)
	}
	return string(data), nil
}

func writeOutput(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
