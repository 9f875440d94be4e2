package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/veltio/sfauth/internal/config"
)

// Global configuration instance
var cfg *config.Config

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

func preRunConfigE(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig(cmd)

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// check if verbose flag is set
	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	return nil
}

var rootCmd = &cobra.Command{
	Use:   "sfauth",
	Short: "Authenticate with the Salesforce Partner SOAP API",
	Long: `sfauth performs a legacy SOAP login against the Salesforce Partner API,
extracts the session id and server URL from the response, and can probe
the REST API with the resulting session.

Credentials are read from a config file, SFAUTH_* environment variables
or a .env file; they are never passed on the command line.

If no config file is specified, sfauth looks in the following locations:
  - ./config.yaml
  - ./config/config.yaml
  - /etc/sfauth/config.yaml
  - ~/.config/sfauth/config.yaml`,
	PersistentPreRunE: preRunConfigE,
	RunE:              runLogin,
}

func init() {

	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is ~/.config/sfauth/config.yaml)")

}
