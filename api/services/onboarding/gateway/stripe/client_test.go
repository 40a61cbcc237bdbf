package stripegw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v84"

	gw "github.com/apptiva/subsheet/api/services/onboarding/gateway"
)

func Test_WrapErr_PlatformErrorKeepsStatusAndBody(t *testing.T) {
	cause := &stripe.Error{
		Code:           stripe.ErrorCodeRateLimit,
		HTTPStatusCode: 429,
		Msg:            "too many requests",
	}

	err := wrapErr("create customer", cause)

	var ge *gw.GatewayError
	if assert.ErrorAs(t, err, &ge) {
		assert.Equal(t, "create customer", ge.Op)
		assert.Equal(t, 429, ge.StatusCode)
		assert.Equal(t, "too many requests", ge.Body)
		assert.False(t, ge.NotFound)
	}
	assert.False(t, gw.IsNotFound(err))
}

func Test_WrapErr_ResourceMissingIsNotFound(t *testing.T) {
	cause := &stripe.Error{
		Code:           stripe.ErrorCodeResourceMissing,
		HTTPStatusCode: 404,
		Msg:            "No such product: 'prod_missing'",
	}

	err := wrapErr("fetch product", cause)
	assert.True(t, gw.IsNotFound(err))
}

func Test_WrapErr_TransportErrorHasNoStatus(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	err := wrapErr("list prices", cause)

	var ge *gw.GatewayError
	if assert.ErrorAs(t, err, &ge) {
		assert.Equal(t, 0, ge.StatusCode)
		assert.False(t, ge.NotFound)
		assert.ErrorIs(t, err, cause)
	}
}

func Test_ToPrice_MapsProductAndCurrency(t *testing.T) {
	p := &stripe.Price{
		ID:         "price_1",
		UnitAmount: 1999,
		Currency:   stripe.CurrencyEUR,
		Product:    &stripe.Product{ID: "prod_1"},
	}

	got := toPrice(p)
	assert.Equal(t, gw.Price{ID: "price_1", ProductID: "prod_1", UnitAmount: 1999, Currency: "eur"}, got)
}

func Test_ToPrice_NilProduct(t *testing.T) {
	p := &stripe.Price{ID: "price_1", UnitAmount: 500, Currency: stripe.CurrencyUSD}

	got := toPrice(p)
	assert.Empty(t, got.ProductID)
	assert.Equal(t, "usd", got.Currency)
}
