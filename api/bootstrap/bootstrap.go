package bootstrap

import (
	"fmt"
	"sync"

	config "github.com/apptiva/subsheet/api/config"
	"github.com/apptiva/subsheet/api/database"
	"github.com/apptiva/subsheet/api/services/onboarding/app"
	stripegw "github.com/apptiva/subsheet/api/services/onboarding/gateway/stripe"
	"github.com/apptiva/subsheet/api/services/onboarding/notify"
	"github.com/apptiva/subsheet/api/services/onboarding/sheet"
	"github.com/apptiva/subsheet/api/services/onboarding/sheetdb"
	"github.com/apptiva/subsheet/api/settings"
)

var onboardingService app.Service
var settingsStore settings.Store
var properties settings.Properties
var initOnce sync.Once
var initErr error

// Init initializes config, the row and settings stores, and third-party
// clients, and wires the onboarding service.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override
	// or init heavy deps.
	if onboardingService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg := config.AppConfig

	properties = settings.NewProperties(cfg.PropertiesPath)

	var source app.RecordSource
	var writer app.StatusWriter
	switch {
	case cfg.SheetCSVPath != "":
		store := sheet.New(cfg.SheetCSVPath)
		source, writer = store, store
		settingsStore = settings.NewFileStore(cfg.SettingsPath)
	case cfg.DatabaseURL != "":
		if err := database.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		db := database.GetDB()
		if err := settings.EnsureSchema(db); err != nil {
			return err
		}
		if err := sheetdb.EnsureSchema(db); err != nil {
			return err
		}
		store := sheetdb.New(db)
		source, writer = store, store
		settingsStore = settings.NewDBStore(db)
	default:
		return fmt.Errorf("no row store configured: set SHEET_CSV_PATH or DATABASE_URL")
	}

	// The credential may legitimately be absent here; the workflow's
	// pre-flight check reports it before touching any record.
	apiKey, _ := properties.Get(app.SettingAPIKey)

	var sender notify.Sender
	if cfg.SendGridAPIKey != "" {
		sender = notify.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFromName, cfg.EmailFromAddress)
	} else {
		sender = notify.LogSender{}
	}

	onboardingService = app.NewService(app.Params{
		Gateway:    stripegw.New(apiKey),
		Source:     source,
		Writer:     writer,
		Notifier:   sender,
		Settings:   settings.RunSource{Store: settingsStore, Props: properties},
		SuccessURL: cfg.SuccessURL,
		CancelURL:  cfg.CancelURL,
		SenderName: cfg.EmailFromName,
	})
	return nil
}

func GetOnboardingService() app.Service { return onboardingService }

// SetOnboardingService allows tests to inject a stub implementation.
func SetOnboardingService(s app.Service) { onboardingService = s }

func GetSettingsStore() settings.Store { return settingsStore }

func GetProperties() settings.Properties { return properties }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
