// Package violation puts every office-machine capability behind one fat
// interface, so a plain printer has to carry a stapling method it cannot honor.
package violation

import (
	"errors"
	"fmt"
	"io"

	apperrors "solid-example/pkg/errors"
	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

var ErrStaplingNotSupported = errors.New("stapling not supported")

// Machine every implementer must provide all four operations.
type Machine interface {
	StartMachine()
	StopMachine()
	PrintDocument(document string)
	StapleDocument(document string) error
}

type SimplePrinter struct {
	out io.Writer
}

func NewSimplePrinter(out io.Writer) *SimplePrinter { return &SimplePrinter{out: out} }

func (p *SimplePrinter) StartMachine() { fmt.Fprintln(p.out, "SimplePrinter: ON") }
func (p *SimplePrinter) StopMachine()  { fmt.Fprintln(p.out, "SimplePrinter: OFF") }

func (p *SimplePrinter) PrintDocument(document string) {
	fmt.Fprintf(p.out, "SimplePrinter: Printing '%s'\n", document)
}

// StapleDocument exists only to satisfy Machine; callers find out at runtime.
func (p *SimplePrinter) StapleDocument(document string) error {
	logger.Warn("stapling requested on a device without a stapler",
		zap.String("device", "SimplePrinter"), zap.String("document", document))
	return apperrors.StaplingNotSupported(ErrStaplingNotSupported, "SimplePrinter")
}

type AdvancedPrinterStapler struct {
	out io.Writer
}

func NewAdvancedPrinterStapler(out io.Writer) *AdvancedPrinterStapler {
	return &AdvancedPrinterStapler{out: out}
}

func (p *AdvancedPrinterStapler) StartMachine() { fmt.Fprintln(p.out, "AdvancedPrinterStapler: ON") }
func (p *AdvancedPrinterStapler) StopMachine()  { fmt.Fprintln(p.out, "AdvancedPrinterStapler: OFF") }

func (p *AdvancedPrinterStapler) PrintDocument(document string) {
	fmt.Fprintf(p.out, "AdvancedPrinterStapler: Printing '%s'\n", document)
}

func (p *AdvancedPrinterStapler) StapleDocument(document string) error {
	fmt.Fprintf(p.out, "AdvancedPrinterStapler: Stapling '%s'\n", document)
	return nil
}

// PrintAndStapleJob accepts any Machine, including ones that will fail to staple.
// The machine is stopped even when stapling fails.
func PrintAndStapleJob(m Machine, document string) error {
	m.StartMachine()
	defer m.StopMachine()
	m.PrintDocument(document)
	return m.StapleDocument(document)
}

var (
	_ Machine = (*SimplePrinter)(nil)
	_ Machine = (*AdvancedPrinterStapler)(nil)
)
