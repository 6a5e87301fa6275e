// Package compliant dispatches payments through PaymentStrategy; a new
// method is a new type and PaymentProcessor never changes.
package compliant

import (
	"fmt"
	"io"

	"solid-example/pkg/logger"
	"solid-example/solid/ocp"

	"go.uber.org/zap"
)

type PaymentStrategy interface {
	Pay(amount float64)
}

type CreditCardPayment struct {
	out io.Writer
}

func NewCreditCardPayment(out io.Writer) *CreditCardPayment { return &CreditCardPayment{out: out} }

func (p *CreditCardPayment) Pay(amount float64) {
	fmt.Fprintf(p.out, "Processing credit card payment of $%s\n", ocp.FormatAmount(amount))
}

type PayPalPayment struct {
	out io.Writer
}

func NewPayPalPayment(out io.Writer) *PayPalPayment { return &PayPalPayment{out: out} }

func (p *PayPalPayment) Pay(amount float64) {
	fmt.Fprintf(p.out, "Processing PayPal payment of $%s\n", ocp.FormatAmount(amount))
}

// BankTransferPayment was added without touching PaymentProcessor.
type BankTransferPayment struct {
	out io.Writer
}

func NewBankTransferPayment(out io.Writer) *BankTransferPayment {
	return &BankTransferPayment{out: out}
}

func (p *BankTransferPayment) Pay(amount float64) {
	fmt.Fprintf(p.out, "Processing bank transfer payment of $%s\n", ocp.FormatAmount(amount))
}

type PaymentProcessor struct{}

func NewPaymentProcessor() *PaymentProcessor { return &PaymentProcessor{} }

func (p *PaymentProcessor) ProcessPayment(amount float64, strategy PaymentStrategy) {
	strategy.Pay(amount)
	logger.Debug("payment processed", zap.String("strategy", fmt.Sprintf("%T", strategy)), zap.Float64("amount", amount))
}

var (
	_ PaymentStrategy = (*CreditCardPayment)(nil)
	_ PaymentStrategy = (*PayPalPayment)(nil)
	_ PaymentStrategy = (*BankTransferPayment)(nil)
)
