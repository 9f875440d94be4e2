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

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Perform a SOAP login and print the session details",
	Long: `Performs the Partner API SOAP login exchange and prints the session id
and server URL on success. With --probe, also issues one diagnostic GET
against the derived REST endpoint using the new session.`,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {

	// Set up signal handling for graceful cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nLogin cancelled.")
		cancel()
	}()

	creds, err := cfg.Credentials()
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	// The flag wins over the configured value
	if sandbox, err := cmd.Flags().GetBool("sandbox"); err == nil && sandbox {
		creds.Sandbox = true
	}

	var authenticator *salesforce.Authenticator
	if loginURL := cfg.LoginURL(); len(loginURL) > 0 {
		authenticator = salesforce.NewAuthenticatorWithEndpoint(loginURL)
	} else {
		authenticator = salesforce.NewAuthenticator()
	}

	result, err := authenticator.Authenticate(ctx, creds)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	fmt.Println("Authentication successful")
	fmt.Printf("Session ID: %s\n", result.SessionID)
	fmt.Printf("Server URL: %s\n", result.ServerURL)
	fmt.Printf("Authorization header: Bearer %s\n", result.SessionID)

	probe, err := cmd.Flags().GetBool("probe")
	if err == nil && probe {
		authenticator.ProbeRest(ctx, result.SessionID, result.ServerURL)
	}

	return nil
}

func init() {

	loginCmd.Flags().Bool("probe", false, "Probe the REST API with the new session")
	loginCmd.Flags().Bool("sandbox", false, "Target the sandbox login endpoint")

	rootCmd.AddCommand(loginCmd)
}
