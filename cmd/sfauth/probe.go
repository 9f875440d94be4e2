package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veltio/sfauth/internal/salesforce"
)

var (
	probeSessionID string
	probeServerURL string
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe the REST API with an existing session",
	Long: `Issues one diagnostic GET against the REST version listing derived from
the given server URL, authorized with the given session id. Failures are
logged and never fatal.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		if len(probeSessionID) == 0 || len(probeServerURL) == 0 {
			return fmt.Errorf("both --session-id and --server-url are required")
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		salesforce.NewAuthenticator().ProbeRest(ctx, probeSessionID, probeServerURL)

		return nil
	},
}

func init() {

	probeCmd.Flags().StringVar(&probeSessionID, "session-id", "", "Session id from a previous login")
	probeCmd.Flags().StringVar(&probeServerURL, "server-url", "", "Server URL from a previous login")

	rootCmd.AddCommand(probeCmd)
}
