package services

import (
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// IntentCreator creates a payment intent and returns its client secret.
type IntentCreator interface {
	CreateIntent(amount int64, currency string) (string, error)
}

type StripePayments struct{}

func NewStripePayments(apiKey string) *StripePayments {
	stripe.Key = apiKey
	return &StripePayments{}
}

func (p *StripePayments) CreateIntent(amount int64, currency string) (string, error) {
	pi, err := paymentintent.New(&stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
