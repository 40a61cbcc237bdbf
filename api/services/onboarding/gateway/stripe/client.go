package stripegw

import (
	"errors"
	"net/http"
	"time"

	stripe "github.com/stripe/stripe-go/v84"
	sclient "github.com/stripe/stripe-go/v84/client"

	gw "github.com/apptiva/subsheet/api/services/onboarding/gateway"
)

// client is the Stripe SDK-backed implementation of the gateway. The API key
// is injected per instance rather than set on the SDK global so a run's
// credential snapshot cannot be changed underneath it.
type client struct {
	api *sclient.API
	now func() time.Time
}

// New returns a Billing gateway backed by the official Stripe SDK.
func New(apiKey string) gw.Billing {
	api := &sclient.API{}
	api.Init(apiKey, nil)
	return client{api: api, now: time.Now}
}

func (c client) CreateCustomer(name, email, address, city, postalCode, country string) (gw.Customer, error) {
	params := &stripe.CustomerParams{
		Name:  stripe.String(name),
		Email: stripe.String(email),
		Address: &stripe.AddressParams{
			Line1:      stripe.String(address),
			City:       stripe.String(city),
			PostalCode: stripe.String(postalCode),
			Country:    stripe.String(country),
		},
	}
	cust, err := c.api.Customers.New(params)
	if err != nil {
		return gw.Customer{}, wrapErr("create customer", err)
	}
	return gw.Customer{ID: cust.ID, Name: cust.Name, Email: cust.Email}, nil
}

func (c client) FetchProduct(productID string) (gw.Product, error) {
	prod, err := c.api.Products.Get(productID, nil)
	if err != nil {
		return gw.Product{}, wrapErr("fetch product", err)
	}
	return gw.Product{ID: prod.ID, Name: prod.Name}, nil
}

func (c client) FetchPricesForProduct(productID string) ([]gw.Price, error) {
	params := &stripe.PriceListParams{Product: stripe.String(productID)}
	prices := []gw.Price{}
	it := c.api.Prices.List(params)
	for it.Next() {
		prices = append(prices, toPrice(it.Price()))
	}
	if err := it.Err(); err != nil {
		return nil, wrapErr("list prices", err)
	}
	return prices, nil
}

func (c client) CreatePrice(amountMinorUnits int64, productID, currency string) (gw.Price, error) {
	params := &stripe.PriceParams{
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(amountMinorUnits),
		Currency:   stripe.String(currency),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
	}
	price, err := c.api.Prices.New(params)
	if err != nil {
		return gw.Price{}, wrapErr("create price", err)
	}
	return toPrice(price), nil
}

func (c client) CreateSubscription(customerID, priceID string, durationMonths, trialDays int64) (gw.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
		CancelAt: stripe.Int64(cancelAtUnix(c.now(), durationMonths)),
	}
	if trialDays > 0 {
		params.TrialEnd = stripe.Int64(trialEndUnix(c.now(), trialDays))
	}
	sub, err := c.api.Subscriptions.New(params)
	if err != nil {
		return gw.Subscription{}, wrapErr("create subscription", err)
	}
	out := gw.Subscription{
		ID:       sub.ID,
		CancelAt: sub.CancelAt,
		TrialEnd: sub.TrialEnd,
		Status:   string(sub.Status),
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	return out, nil
}

func (c client) CreateCheckoutSession(priceID, customerID, paymentMethodType, successURL, cancelURL string) (gw.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(customerID),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{paymentMethodType}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return gw.CheckoutSession{}, wrapErr("create checkout session", err)
	}
	return gw.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func toPrice(p *stripe.Price) gw.Price {
	out := gw.Price{
		ID:         p.ID,
		UnitAmount: p.UnitAmount,
		Currency:   string(p.Currency),
	}
	if p.Product != nil {
		out.ProductID = p.Product.ID
	}
	return out
}

// wrapErr maps SDK errors onto the gateway's single error type. Platform
// responses keep their HTTP status and message; anything else (DNS, TLS,
// timeouts) carries only the cause.
func wrapErr(op string, err error) error {
	var serr *stripe.Error
	if errors.As(err, &serr) {
		return &gw.GatewayError{
			Op:         op,
			StatusCode: serr.HTTPStatusCode,
			Body:       serr.Msg,
			NotFound:   serr.Code == stripe.ErrorCodeResourceMissing || serr.HTTPStatusCode == http.StatusNotFound,
			Err:        err,
		}
	}
	return &gw.GatewayError{Op: op, Err: err}
}
