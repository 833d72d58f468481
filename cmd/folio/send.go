package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/folio/pkg/contact/client"
)

func newSendCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
		form    client.Form
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a contact form to a running server",
		Long: `Validates the form the way the site does and posts it to /api/contact.

Example:
  folio send --url https://example.com --name Alice --email alice@example.com \
    --subject Hi --message "Hello there"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := client.New(baseURL, client.WithHTTPClient(&http.Client{Timeout: timeout}))

			status := c.Submit(cmd.Context(), form)
			fmt.Fprintln(cmd.OutOrStdout(), status.Message)
			if !status.OK {
				return errors.New("submission failed")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&baseURL, "url", "http://localhost:3000", "site base URL")
	f.DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	f.StringVar(&form.Name, "name", "", "sender name")
	f.StringVar(&form.Email, "email", "", "sender email address")
	f.StringVar(&form.Subject, "subject", "", "message subject")
	f.StringVar(&form.Message, "message", "", "message body")

	return cmd
}
