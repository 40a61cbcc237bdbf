package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration. It is loaded once at startup
// and treated as immutable for the duration of a run.
type Config struct {
	// DatabaseURL selects the Postgres-backed row and settings stores when set.
	DatabaseURL string
	// SheetCSVPath selects the CSV-backed row store when set. Takes
	// precedence over DatabaseURL.
	SheetCSVPath string
	// SettingsPath is the settings file used alongside the CSV row store.
	SettingsPath string
	// PropertiesPath is the durable properties file holding the promoted
	// Stripe credential.
	PropertiesPath string
	// SendGridAPIKey enables outbound email. When empty, checkout links are
	// logged instead of sent.
	SendGridAPIKey   string
	EmailFromName    string
	EmailFromAddress string
	// SuccessURL and CancelURL are the checkout session redirect targets.
	SuccessURL string
	CancelURL  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		// Check if .env file exists in current directory
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Load .env file
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		// Move up one directory
		currentDir = filepath.Dir(currentDir)
	}

	vars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"DatabaseURL", "DATABASE_URL", "Database URL", false},
		{"SheetCSVPath", "SHEET_CSV_PATH", "Sheet CSV Path", false},
		{"SettingsPath", "SETTINGS_PATH", "Settings Path", false},
		{"PropertiesPath", "PROPERTIES_PATH", "Properties Path", false},
		{"SendGridAPIKey", "SENDGRID_API_KEY", "SendGrid API Key", false},
		{"EmailFromName", "EMAIL_FROM_NAME", "Email From Name", false},
		{"EmailFromAddress", "EMAIL_FROM_ADDRESS", "Email From Address", false},
		{"SuccessURL", "SUCCESS_URL", "Checkout Success URL", false},
		{"CancelURL", "CANCEL_URL", "Checkout Cancel URL", false},
	}

	for _, v := range vars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults
	if config.SettingsPath == "" {
		config.SettingsPath = "settings.env"
	}
	if config.PropertiesPath == "" {
		config.PropertiesPath = "subsheet.properties"
	}
	if config.EmailFromName == "" {
		config.EmailFromName = "Apptiva Software"
	}
	if config.EmailFromAddress == "" {
		config.EmailFromAddress = "billing@apptivasoftware.com"
	}
	if config.SuccessURL == "" {
		config.SuccessURL = DefaultSuccessURL
	}
	if config.CancelURL == "" {
		config.CancelURL = DefaultCancelURL
	}

	return config, nil
}
