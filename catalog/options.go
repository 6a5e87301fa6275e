package catalog

import (
	"io"

	"solid-example/infrastructure/persistence/memory"
	ocpcompliant "solid-example/solid/ocp/compliant"
	ocpviolation "solid-example/solid/ocp/violation"
	srpcompliant "solid-example/solid/srp/compliant"
)

type Documents struct {
	Simple          string
	AdvancedPlain   string
	AdvancedStapled string
	Generic         string
}

type Payment struct {
	Method string
	Amount float64
}

// StrategyFactory builds the payment strategy registered for one method tag.
type StrategyFactory func(w io.Writer) ocpcompliant.PaymentStrategy

// Options inputs of the demo scenarios. Zero fields take the defaults below.
type Options struct {
	Documents Documents
	Payments  []Payment
	// UnsupportedMethod is replayed by the tag-dispatch demo to show its failure mode.
	UnsupportedMethod string
	// Strategies maps method tags to strategies for the compliant payment demo.
	Strategies map[string]StrategyFactory

	// Users seeds the default store; the first one also drives the monolithic profile.
	Users []srpcompliant.User
	// Store backs the SRP repository. Defaults to an in-memory store seeded with Users.
	Store         srpcompliant.Store
	NewUser       srpcompliant.User
	MissingUserID int
}

func DefaultStrategies() map[string]StrategyFactory {
	return map[string]StrategyFactory{
		ocpviolation.MethodCreditCard: func(w io.Writer) ocpcompliant.PaymentStrategy {
			return ocpcompliant.NewCreditCardPayment(w)
		},
		ocpviolation.MethodPayPal: func(w io.Writer) ocpcompliant.PaymentStrategy {
			return ocpcompliant.NewPayPalPayment(w)
		},
		ocpviolation.MethodBankTransfer: func(w io.Writer) ocpcompliant.PaymentStrategy {
			return ocpcompliant.NewBankTransferPayment(w)
		},
	}
}

func (o Options) withDefaults() Options {
	if o.Documents.Simple == "" {
		o.Documents.Simple = "MySimpleReport.docx"
	}
	if o.Documents.AdvancedPlain == "" {
		o.Documents.AdvancedPlain = "MyAdvancedReport_no_staple.docx"
	}
	if o.Documents.AdvancedStapled == "" {
		o.Documents.AdvancedStapled = "MyAdvancedReport_with_staple.docx"
	}
	if o.Documents.Generic == "" {
		o.Documents.Generic = "Test.doc"
	}
	if len(o.Payments) == 0 {
		o.Payments = []Payment{
			{Method: ocpviolation.MethodCreditCard, Amount: 100},
			{Method: ocpviolation.MethodPayPal, Amount: 50},
			{Method: ocpviolation.MethodBankTransfer, Amount: 200},
		}
	}
	if o.UnsupportedMethod == "" {
		o.UnsupportedMethod = "bitcoin"
	}
	if o.Strategies == nil {
		o.Strategies = DefaultStrategies()
	}
	if len(o.Users) == 0 {
		o.Users = []srpcompliant.User{{UserID: 1, Name: "개발구루", Email: "guru@example.com"}}
	}
	if o.Store == nil {
		o.Store = memory.NewUserStore(o.Users...)
	}
	if o.NewUser.UserID == 0 {
		o.NewUser = srpcompliant.User{UserID: 2, Name: "주니어개발자", Email: "junior@example.com"}
	}
	if o.MissingUserID == 0 {
		o.MissingUserID = 3
	}
	return o
}
