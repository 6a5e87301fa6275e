package violation

import (
	"bytes"
	"testing"

	apperrors "solid-example/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPaymentKnownMethods(t *testing.T) {
	testCases := []struct {
		method string
		amount float64
		want   string
	}{
		{MethodCreditCard, 100, "Processing credit card payment of $100\n"},
		{MethodPayPal, 50, "Processing PayPal payment of $50\n"},
		{MethodBankTransfer, 200.75, "Processing bank transfer payment of $200.75\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.method, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, NewPaymentProcessor(&out).ProcessPayment(tc.amount, tc.method))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestProcessPaymentUnsupportedMethod(t *testing.T) {
	var out bytes.Buffer
	err := NewPaymentProcessor(&out).ProcessPayment(10, "bitcoin")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPaymentMethod)
	assert.True(t, apperrors.Is(err, apperrors.CodeUnsupportedPaymentMethod))
	assert.Contains(t, err.Error(), "unsupported payment method")
	assert.Empty(t, out.String())
}

func TestProcessPaymentTagIsCaseSensitive(t *testing.T) {
	err := NewPaymentProcessor(&bytes.Buffer{}).ProcessPayment(10, "PayPal")
	assert.ErrorIs(t, err, ErrUnsupportedPaymentMethod)
}
