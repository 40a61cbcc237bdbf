package config

const (
	// Currency is the currency code used when resolving and creating prices.
	Currency = "eur"

	// PaymentMethodType is the payment method offered on checkout sessions.
	PaymentMethodType = "card"

	// DefaultSuccessURL is where the customer lands after completing checkout.
	DefaultSuccessURL = "https://apptivasoftware.com"

	// DefaultCancelURL is where the customer lands after abandoning checkout.
	DefaultCancelURL = "https://apptivasoftware.com"
)
