package compliant

import (
	"bytes"
	"io"
	"testing"

	"solid-example/solid/ocp/violation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type giftCardPayment struct {
	paid []float64
}

func (g *giftCardPayment) Pay(amount float64) { g.paid = append(g.paid, amount) }

func TestStrategyOutputMatchesTagDispatch(t *testing.T) {
	testCases := []struct {
		method   string
		strategy func(io.Writer) PaymentStrategy
	}{
		{violation.MethodCreditCard, func(w io.Writer) PaymentStrategy { return NewCreditCardPayment(w) }},
		{violation.MethodPayPal, func(w io.Writer) PaymentStrategy { return NewPayPalPayment(w) }},
		{violation.MethodBankTransfer, func(w io.Writer) PaymentStrategy { return NewBankTransferPayment(w) }},
	}
	amounts := []float64{0, 1, 50, 100, 200, 12.34}

	for _, tc := range testCases {
		t.Run(tc.method, func(t *testing.T) {
			for _, amount := range amounts {
				var tagged, strategic bytes.Buffer
				require.NoError(t, violation.NewPaymentProcessor(&tagged).ProcessPayment(amount, tc.method))
				NewPaymentProcessor().ProcessPayment(amount, tc.strategy(&strategic))

				assert.NotEmpty(t, strategic.String())
				assert.Equal(t, tagged.String(), strategic.String())
			}
		})
	}
}

func TestNewStrategyNeedsNoProcessorChange(t *testing.T) {
	gift := &giftCardPayment{}
	processor := NewPaymentProcessor()
	processor.ProcessPayment(25, gift)
	processor.ProcessPayment(5.5, gift)

	assert.Equal(t, []float64{25, 5.5}, gift.paid)
}
