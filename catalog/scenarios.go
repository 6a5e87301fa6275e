package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"solid-example/pkg/logger"
	dipcompliant "solid-example/solid/dip/compliant"
	dipviolation "solid-example/solid/dip/violation"
	ispcompliant "solid-example/solid/isp/compliant"
	ispviolation "solid-example/solid/isp/violation"
	ocpcompliant "solid-example/solid/ocp/compliant"
	ocpviolation "solid-example/solid/ocp/violation"
	srpcompliant "solid-example/solid/srp/compliant"
	srpviolation "solid-example/solid/srp/violation"

	"go.uber.org/zap"
)

type scenarios struct {
	opts Options
}

// reportFailure prints the innermost cause so the line matches what a caller of
// the example would see, then carries on with the scenario.
func reportFailure(w io.Writer, err error) {
	cause := err
	for next := errors.Unwrap(cause); next != nil; next = errors.Unwrap(cause) {
		cause = next
	}
	fmt.Fprintf(w, "Error: %v\n", cause)
	logger.Info("example failure reported", zap.Error(err))
}

func (s *scenarios) dipViolation(_ context.Context, w io.Writer) error {
	sw := dipviolation.NewElectricPowerSwitch(w)
	sw.Press()
	sw.Press()
	return nil
}

func (s *scenarios) dipCompliant(_ context.Context, w io.Writer) error {
	switchForBulb := dipcompliant.NewElectricPowerSwitch(dipcompliant.NewLightBulb(w))
	switchForFan := dipcompliant.NewElectricPowerSwitch(dipcompliant.NewFan(w))

	switchForBulb.Press()
	switchForFan.Press()
	switchForBulb.Press()
	switchForFan.Press()
	return nil
}

func (s *scenarios) ispViolation(_ context.Context, w io.Writer) error {
	docs := s.opts.Documents
	if err := ispviolation.PrintAndStapleJob(ispviolation.NewSimplePrinter(w), docs.Simple); err != nil {
		reportFailure(w, err)
	}
	return ispviolation.PrintAndStapleJob(ispviolation.NewAdvancedPrinterStapler(w), docs.AdvancedStapled)
}

func (s *scenarios) ispCompliant(_ context.Context, w io.Writer) error {
	docs := s.opts.Documents
	simple := ispcompliant.NewSimplePrinter(w)
	advanced := ispcompliant.NewAdvancedPrinterStapler(w)

	ispcompliant.BasicPrintJob(simple, simple, docs.Simple)
	ispcompliant.BasicPrintJob(advanced, advanced, docs.AdvancedPlain)
	ispcompliant.AdvancedPrintAndStapleJob(advanced, docs.AdvancedStapled)

	ispcompliant.ProcessPrintableMachine(simple, docs.Generic)
	ispcompliant.ProcessPrintableMachine(advanced, docs.Generic)
	return nil
}

func (s *scenarios) ocpViolation(_ context.Context, w io.Writer) error {
	processor := ocpviolation.NewPaymentProcessor(w)
	for _, p := range s.opts.Payments {
		if err := processor.ProcessPayment(p.Amount, p.Method); err != nil {
			reportFailure(w, err)
		}
	}
	if err := processor.ProcessPayment(1, s.opts.UnsupportedMethod); err != nil {
		reportFailure(w, err)
	}
	return nil
}

// ocpCompliant resolves tags once, at the edge; the processor itself never branches.
func (s *scenarios) ocpCompliant(_ context.Context, w io.Writer) error {
	processor := ocpcompliant.NewPaymentProcessor()
	for _, p := range s.opts.Payments {
		newStrategy, ok := s.opts.Strategies[p.Method]
		if !ok {
			logger.Warn("no strategy registered, payment skipped", zap.String("method", p.Method))
			continue
		}
		processor.ProcessPayment(p.Amount, newStrategy(w))
	}
	return nil
}

func (s *scenarios) srpViolation(_ context.Context, w io.Writer) error {
	u := s.opts.Users[0]
	profile := srpviolation.NewUserProfile(w, u.UserID, u.Name, u.Email)
	profile.DisplayUser()
	profile.SaveUserToDatabase()
	return nil
}

func (s *scenarios) srpCompliant(ctx context.Context, w io.Writer) error {
	repo := srpcompliant.NewUserRepository(w, s.opts.Store)
	displayer := srpcompliant.NewUserDisplayer(w)

	existing, err := repo.GetUserByID(ctx, s.opts.Users[0].UserID)
	if err != nil {
		return err
	}
	displayer.Display(existing)

	newUser := s.opts.NewUser
	if err := repo.Save(ctx, &newUser); err != nil {
		return err
	}
	fetched, err := repo.GetUserByID(ctx, newUser.UserID)
	if err != nil {
		return err
	}
	displayer.Display(fetched)

	missing, err := repo.GetUserByID(ctx, s.opts.MissingUserID)
	if err != nil {
		return err
	}
	displayer.Display(missing)
	return nil
}
