// Package violation dispatches payments on a string tag; every new method
// means editing PaymentProcessor.
package violation

import (
	"errors"
	"fmt"
	"io"

	apperrors "solid-example/pkg/errors"
	"solid-example/pkg/logger"
	"solid-example/solid/ocp"

	"go.uber.org/zap"
)

const (
	MethodCreditCard   = "credit_card"
	MethodPayPal       = "paypal"
	MethodBankTransfer = "bank_transfer"
)

var ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

type PaymentProcessor struct {
	out io.Writer
}

func NewPaymentProcessor(out io.Writer) *PaymentProcessor {
	return &PaymentProcessor{out: out}
}

// ProcessPayment prints nothing for an unknown method.
func (p *PaymentProcessor) ProcessPayment(amount float64, method string) error {
	switch method {
	case MethodCreditCard:
		fmt.Fprintf(p.out, "Processing credit card payment of $%s\n", ocp.FormatAmount(amount))
	case MethodPayPal:
		fmt.Fprintf(p.out, "Processing PayPal payment of $%s\n", ocp.FormatAmount(amount))
	case MethodBankTransfer:
		fmt.Fprintf(p.out, "Processing bank transfer payment of $%s\n", ocp.FormatAmount(amount))
	default:
		logger.Warn("payment rejected", zap.String("method", method), zap.Float64("amount", amount))
		return apperrors.UnsupportedPaymentMethod(ErrUnsupportedPaymentMethod, method)
	}
	logger.Debug("payment processed", zap.String("method", method), zap.Float64("amount", amount))
	return nil
}
