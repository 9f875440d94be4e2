package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SFAUTH_SALESFORCE_USERNAME", "user@example.com")
	t.Setenv("SFAUTH_SALESFORCE_PASSWORD", "hunter2")
	t.Setenv("SFAUTH_SALESFORCE_TOKEN", "TOKEN123")
	t.Setenv("SFAUTH_SALESFORCE_SANDBOX", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	creds, err := cfg.Credentials()
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", creds.Username)
	assert.Equal(t, "hunter2", creds.Password)
	assert.Equal(t, "TOKEN123", creds.SecurityToken)
	assert.True(t, creds.Sandbox)
}

func TestLoad_FromConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `salesforce:
  username: file-user@example.com
  password: file-pass
  token: FILETOKEN
  sandbox: false
  login_url: https://acme.my.salesforce.com/services/Soap/u/60.0
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	creds, err := cfg.Credentials()
	require.NoError(t, err)

	assert.Equal(t, "file-user@example.com", creds.Username)
	assert.Equal(t, "file-pass", creds.Password)
	assert.Equal(t, "FILETOKEN", creds.SecurityToken)
	assert.False(t, creds.Sandbox)

	assert.Equal(t, "https://acme.my.salesforce.com/services/Soap/u/60.0", cfg.LoginURL())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.LoginURL())
}

func TestCredentials_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name: "Missing username",
			env: map[string]string{
				"SFAUTH_SALESFORCE_PASSWORD": "hunter2",
				"SFAUTH_SALESFORCE_TOKEN":    "TOKEN123",
			},
			wantErr: "username not found",
		},
		{
			name: "Missing password",
			env: map[string]string{
				"SFAUTH_SALESFORCE_USERNAME": "user@example.com",
				"SFAUTH_SALESFORCE_TOKEN":    "TOKEN123",
			},
			wantErr: "password not found",
		},
		{
			name: "Missing token",
			env: map[string]string{
				"SFAUTH_SALESFORCE_USERNAME": "user@example.com",
				"SFAUTH_SALESFORCE_PASSWORD": "hunter2",
			},
			wantErr: "token not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load("")
			require.NoError(t, err)

			_, err = cfg.Credentials()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("SFAUTH_LOGGING_LEVEL", "shouting")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing log level")
}
