// Package compliant splits office-machine capabilities into narrow roles.
// Devices implement only the roles they support and clients ask only for
// the roles they use.
package compliant

import (
	"fmt"
	"io"
)

type MachineControl interface {
	StartMachine()
	StopMachine()
}

type Printer interface {
	PrintDocument(document string)
}

type Stapler interface {
	StapleDocument(document string)
}

// PrintableMachine is what a plain print job needs.
type PrintableMachine interface {
	MachineControl
	Printer
}

type MultiFunctionDevice interface {
	MachineControl
	Printer
	Stapler
}

// SimplePrinter has no stapler and declares no stapling method.
type SimplePrinter struct {
	out io.Writer
}

func NewSimplePrinter(out io.Writer) *SimplePrinter { return &SimplePrinter{out: out} }

func (p *SimplePrinter) StartMachine() { fmt.Fprintln(p.out, "SimplePrinter: ON") }
func (p *SimplePrinter) StopMachine()  { fmt.Fprintln(p.out, "SimplePrinter: OFF") }

func (p *SimplePrinter) PrintDocument(document string) {
	fmt.Fprintf(p.out, "SimplePrinter: Printing '%s'\n", document)
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

func (p *AdvancedPrinterStapler) StapleDocument(document string) {
	fmt.Fprintf(p.out, "AdvancedPrinterStapler: Stapling '%s'\n", document)
}

// BasicPrintJob takes the two roles separately; the same value may fill both.
func BasicPrintJob(printer Printer, machine MachineControl, document string) {
	machine.StartMachine()
	printer.PrintDocument(document)
	machine.StopMachine()
}

func AdvancedPrintAndStapleJob(device MultiFunctionDevice, document string) {
	device.StartMachine()
	device.PrintDocument(document)
	device.StapleDocument(document)
	device.StopMachine()
}

func ProcessPrintableMachine(device PrintableMachine, document string) {
	device.StartMachine()
	device.PrintDocument(document)
	device.StopMachine()
}

var (
	_ PrintableMachine    = (*SimplePrinter)(nil)
	_ MultiFunctionDevice = (*AdvancedPrinterStapler)(nil)
)
