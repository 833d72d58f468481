package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/folio/pkg/config"
)

type loader func() (*config.Config, error)

func newRootCmd() *cobra.Command {
	var envFiles []string
	load := func() (*config.Config, error) {
		return config.Load(envFiles...)
	}

	serve := newServeCmd(load)

	root := &cobra.Command{
		Use:   "folio",
		Short: "Personal site server with a contact form relay",
		Long: `folio serves a static site and relays its contact form to a mailbox.

Configuration comes from the environment and an optional .env file.
Run without a subcommand to start the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(serve, newSendCmd(), newHealthCmd(load))
	return root
}
