package app

// Setting labels resolved before any record is processed. The API key lives
// in the durable properties store; the rest in run settings.
const (
	SettingAPIKey             = "STRIPE_API_KEY"
	SettingSelectedProduct    = "SELECTED_PRODUCT"
	SettingDefaultTrialPeriod = "DEFAULT_TRIAL_PERIOD"
)

const (
	// StatusSubscribed is the sentinel row status meaning "already done,
	// skip this record".
	StatusSubscribed = "Subscribed"
	// StatusCreated is written back after a successful onboarding.
	StatusCreated = "CREATED"
)

// CustomerRecord is one pending onboarding unit read from the row store.
// Records are immutable once read; derived results go back through the
// StatusWriter, never onto the record.
type CustomerRecord struct {
	Name       string
	Email      string
	Address    string
	Country    string
	City       string
	PostalCode string
	// Months is the subscription duration in calendar months.
	Months int64
	// TrialPeriod overrides the run's default trial period (days) when
	// non-empty.
	TrialPeriod string
	// Amount is the monthly amount in major currency units.
	Amount float64
	// SubscriptionStatus is free text; only StatusSubscribed is significant.
	SubscriptionStatus string
}

type RecordState string

const (
	RecordStateSubscribed RecordState = "subscribed"
	RecordStateSkipped    RecordState = "skipped"
	RecordStateFailed     RecordState = "failed"
)

// RecordOutcome is the result of processing a single record, keyed by the
// record's email.
type RecordOutcome struct {
	Email          string
	State          RecordState
	SubscriptionID string
	Err            error
}

// RunReport lists per-record outcomes in processing order. The caller
// decides how to render it; the workflow itself never alerts.
type RunReport struct {
	Outcomes   []RecordOutcome
	Subscribed int
	Skipped    int
	Failed     int
}

func (r *RunReport) add(o RecordOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.State {
	case RecordStateSubscribed:
		r.Subscribed++
	case RecordStateSkipped:
		r.Skipped++
	case RecordStateFailed:
		r.Failed++
	}
}
