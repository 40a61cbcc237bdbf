package gateway

// Billing abstracts the billing platform operations needed by the onboarding
// workflow. Methods return values (not pointers) to respect the project's
// preference to avoid pointer types in public interfaces. Calls are
// synchronous and never retry internally.
type Billing interface {
	// CreateCustomer registers a new billing customer with a postal address.
	CreateCustomer(name, email, address, city, postalCode, country string) (Customer, error)

	// FetchProduct looks up a product by id. A missing product is reported
	// as a not-found GatewayError, distinguishable via IsNotFound.
	FetchProduct(productID string) (Product, error)

	// FetchPricesForProduct lists every price attached to a product. A
	// product with no prices yields an empty slice and a nil error.
	FetchPricesForProduct(productID string) ([]Price, error)

	// CreatePrice creates a recurring monthly price on a product. No other
	// billing interval is supported.
	CreatePrice(amountMinorUnits int64, productID, currency string) (Price, error)

	// CreateSubscription creates a subscription that cancels after
	// durationMonths calendar months. When trialDays > 0 the subscription
	// starts with a trial ending after trialDays calendar days; otherwise no
	// trial is set at all.
	CreateSubscription(customerID, priceID string, durationMonths, trialDays int64) (Subscription, error)

	// CreateCheckoutSession creates a hosted checkout session in subscription
	// mode with a single line item of quantity one.
	CreateCheckoutSession(priceID, customerID, paymentMethodType, successURL, cancelURL string) (CheckoutSession, error)
}

// Customer is the billing platform's record of a customer.
type Customer struct {
	ID    string
	Name  string
	Email string
}

// Product is a sellable product on the billing platform.
type Product struct {
	ID   string
	Name string
}

// Price is reference data attached to a product. UnitAmount is in minor
// currency units (cents).
type Price struct {
	ID         string
	ProductID  string
	UnitAmount int64
	Currency   string
}

// Subscription is the durable artifact of a successful onboarding. CancelAt
// and TrialEnd are unix timestamps; TrialEnd is zero when no trial was set.
type Subscription struct {
	ID         string
	CustomerID string
	CancelAt   int64
	TrialEnd   int64
	Status     string
}

// CheckoutSession is a hosted payment-collection flow. Only the URL is
// consumed; it is never persisted beyond the notification email.
type CheckoutSession struct {
	ID  string
	URL string
}
