package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/apptiva/subsheet/api/bootstrap"
	"github.com/apptiva/subsheet/api/services/onboarding/app"
)

var rootCmd = &cobra.Command{
	Use:   "subsheet",
	Short: "Sheet-driven Stripe subscription onboarding",
	Long: `subsheet reads pending customer rows from the configured sheet,
creates Stripe customers, subscriptions, and checkout sessions for them,
emails each customer a checkout link, and writes the result back to the
sheet.`,
	SilenceUsage: true,
}

var createSubscriptionsCmd = &cobra.Command{
	Use:   "create-subscriptions",
	Short: "Onboard every pending customer row",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap.Ensure(); err != nil {
			return err
		}
		report, err := bootstrap.GetOnboardingService().SubscribeCustomers(cmd.Context())
		if err != nil {
			return err
		}
		printReport(report)
		return nil
	},
}

var setupCredentialCmd = &cobra.Command{
	Use:   "setup-credential",
	Short: "Promote the configured Stripe API key into durable properties",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap.Ensure(); err != nil {
			return err
		}
		apiKey, ok := bootstrap.GetSettingsStore().GetSetting(app.SettingAPIKey)
		if !ok || apiKey == "" {
			return fmt.Errorf("setting %q is not set", app.SettingAPIKey)
		}
		if err := bootstrap.GetProperties().Set(app.SettingAPIKey, apiKey); err != nil {
			return err
		}
		fmt.Println("API key stored in properties")
		return nil
	},
}

func printReport(report app.RunReport) {
	for _, o := range report.Outcomes {
		switch o.State {
		case app.RecordStateSubscribed:
			fmt.Printf("%s: subscription %s created\n", o.Email, o.SubscriptionID)
		case app.RecordStateSkipped:
			fmt.Printf("%s: already subscribed, skipped\n", o.Email)
		case app.RecordStateFailed:
			fmt.Fprintf(os.Stderr, "%s: %v\n", o.Email, o.Err)
		}
	}
	fmt.Printf("%d subscribed, %d skipped, %d failed\n",
		report.Subscribed, report.Skipped, report.Failed)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	rootCmd.AddCommand(createSubscriptionsCmd)
	rootCmd.AddCommand(setupCredentialCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
