package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	config "github.com/apptiva/subsheet/api/config"
	gw "github.com/apptiva/subsheet/api/services/onboarding/gateway"
	"github.com/apptiva/subsheet/api/services/onboarding/notify"
)

// RecordSource yields the pending customer records at the start of a run.
type RecordSource interface {
	ListPendingRecords() ([]CustomerRecord, error)
}

// StatusWriter persists per-record results back to the row store, keyed by
// email. Implementations silently no-op when no row matches.
type StatusWriter interface {
	SetStatus(email, value string) error
	SetSubscriptionID(email, id string) error
}

// SettingsSource exposes the run's configuration snapshot. Setting reads
// from the run settings store, Property from the durable properties store.
type SettingsSource interface {
	Setting(name string) (string, bool)
	Property(name string) (string, bool)
}

// Service defines the business operations for the onboarding domain.
type Service interface {
	SubscribeCustomers(ctx context.Context) (RunReport, error)
}

// Params collects the collaborators the workflow is wired with. All of them
// are resolved once at bootstrap and immutable for the run.
type Params struct {
	Gateway    gw.Billing
	Source     RecordSource
	Writer     StatusWriter
	Notifier   notify.Sender
	Settings   SettingsSource
	SuccessURL string
	CancelURL  string
	// SenderName signs the checkout email.
	SenderName string
}

// serviceImpl is a concrete implementation.
type serviceImpl struct {
	gw         gw.Billing
	resolver   PriceResolver
	source     RecordSource
	writer     StatusWriter
	notifier   notify.Sender
	settings   SettingsSource
	successURL string
	cancelURL  string
	senderName string
}

func NewService(p Params) Service {
	return serviceImpl{
		gw:         p.Gateway,
		resolver:   NewPriceResolver(p.Gateway),
		source:     p.Source,
		writer:     p.Writer,
		notifier:   p.Notifier,
		settings:   p.Settings,
		successURL: p.SuccessURL,
		cancelURL:  p.CancelURL,
		senderName: p.SenderName,
	}
}

// SubscribeCustomers runs the onboarding workflow over every pending record.
// Configuration problems abort the whole run before any record is touched;
// any other failure is confined to its record and the next record still
// runs. The returned report lists one outcome per record in order.
func (s serviceImpl) SubscribeCustomers(ctx context.Context) (RunReport, error) {
	var report RunReport

	apiKey, ok := s.settings.Property(SettingAPIKey)
	if !ok || apiKey == "" {
		return report, fmt.Errorf("%w: API key not found in properties", ErrConfiguration)
	}
	productID, ok := s.settings.Setting(SettingSelectedProduct)
	if !ok || productID == "" {
		return report, fmt.Errorf("%w: selected product not found in settings", ErrConfiguration)
	}
	trialRaw, ok := s.settings.Setting(SettingDefaultTrialPeriod)
	if !ok {
		return report, fmt.Errorf("%w: default trial period not found in settings", ErrConfiguration)
	}
	defaultTrialDays, err := strconv.ParseInt(strings.TrimSpace(trialRaw), 10, 64)
	if err != nil {
		return report, fmt.Errorf("%w: default trial period %q is not a number", ErrConfiguration, trialRaw)
	}

	records, err := s.source.ListPendingRecords()
	if err != nil {
		return report, fmt.Errorf("%w: listing pending records: %v", ErrConfiguration, err)
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if rec.SubscriptionStatus == StatusSubscribed {
			report.add(RecordOutcome{Email: rec.Email, State: RecordStateSkipped})
			continue
		}
		subID, err := s.subscribeCustomer(rec, productID, defaultTrialDays)
		if err != nil {
			slog.Error("subscription failed", "email", rec.Email, "err", err)
			report.add(RecordOutcome{Email: rec.Email, State: RecordStateFailed, Err: err})
			continue
		}
		report.add(RecordOutcome{Email: rec.Email, State: RecordStateSubscribed, SubscriptionID: subID})
	}

	return report, nil
}

// subscribeCustomer drives one record through customer creation, price
// resolution, subscription and checkout creation, notification, and status
// write-back. Every step shares this single failure boundary.
func (s serviceImpl) subscribeCustomer(rec CustomerRecord, productID string, defaultTrialDays int64) (string, error) {
	cust, err := s.gw.CreateCustomer(rec.Name, rec.Email, rec.Address, rec.City, rec.PostalCode, rec.Country)
	if err != nil {
		return "", fmt.Errorf("%w: customer creation failed: %v", ErrGateway, err)
	}

	amount := MinorUnits(rec.Amount)
	product, err := s.gw.FetchProduct(productID)
	if err != nil {
		if gw.IsNotFound(err) {
			return "", fmt.Errorf("%w: product %s not found", ErrNotFound, productID)
		}
		return "", fmt.Errorf("%w: fetching product: %v", ErrGateway, err)
	}

	price, found, err := s.resolver.Resolve(amount, product.ID, config.Currency)
	if err != nil {
		return "", fmt.Errorf("%w: listing prices: %v", ErrGateway, err)
	}
	if !found {
		return "", fmt.Errorf("%w: price not found for the selected product", ErrNotFound)
	}

	trialDays := s.effectiveTrialDays(rec, defaultTrialDays)

	sub, err := s.gw.CreateSubscription(cust.ID, price.ID, rec.Months, trialDays)
	if err != nil {
		return "", fmt.Errorf("%w: subscription creation failed: %v", ErrGateway, err)
	}

	session, err := s.gw.CreateCheckoutSession(price.ID, cust.ID, config.PaymentMethodType, s.successURL, s.cancelURL)
	if err != nil {
		return "", fmt.Errorf("%w: checkout session creation failed: %v", ErrGateway, err)
	}

	if err := s.sendCheckoutLink(cust, session); err != nil {
		return "", fmt.Errorf("sending checkout email: %w", err)
	}

	if err := s.writer.SetStatus(rec.Email, StatusCreated); err != nil {
		return "", fmt.Errorf("writing status: %w", err)
	}
	if err := s.writer.SetSubscriptionID(rec.Email, sub.ID); err != nil {
		return "", fmt.Errorf("writing subscription id: %w", err)
	}

	return sub.ID, nil
}

// effectiveTrialDays prefers the record's own trial override when present
// and non-empty; an override that fails to parse falls back to the run
// default rather than failing the record.
func (s serviceImpl) effectiveTrialDays(rec CustomerRecord, defaultTrialDays int64) int64 {
	override := strings.TrimSpace(rec.TrialPeriod)
	if override == "" {
		return defaultTrialDays
	}
	days, err := strconv.ParseInt(override, 10, 64)
	if err != nil {
		slog.Warn("invalid trial period override, using default", "email", rec.Email, "value", rec.TrialPeriod)
		return defaultTrialDays
	}
	return days
}

func (s serviceImpl) sendCheckoutLink(cust gw.Customer, session gw.CheckoutSession) error {
	subject := "Complete Your Subscription Setup"
	body := fmt.Sprintf(`
        Dear %s,<br><br>
        Please complete your subscription setup by <a href="%s">clicking here</a>.<br><br>
        Regards,<br>
        %s
    `, cust.Name, session.URL, s.senderName)
	return s.notifier.SendEmail(cust.Email, subject, body)
}
