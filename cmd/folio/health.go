package main

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/folio/pkg/health"
)

var errUnhealthy = errors.New("readiness checks failed")

func newHealthCmd(load loader) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Run the readiness checks once and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			log := newLogger(cfg, cmd.ErrOrStderr())

			svc, err := newServices(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer svc.close(ctx)

			resp := health.Run(ctx, svc.checks, health.WithLogger(log), health.WithTimeout(timeout))
			if err := printJSON(cmd.OutOrStdout(), resp); err != nil {
				return err
			}
			if !resp.OK {
				return errUnhealthy
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "timeout shared by all checks")

	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
