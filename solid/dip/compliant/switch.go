// Package compliant makes the power switch depend on the Switchable
// abstraction; bulbs and fans are injected.
package compliant

import (
	"fmt"
	"io"

	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

// Switchable is the abstraction both sides depend on.
type Switchable interface {
	Activate()
	Deactivate()
}

type LightBulb struct {
	out io.Writer
}

func NewLightBulb(out io.Writer) *LightBulb { return &LightBulb{out: out} }

func (b *LightBulb) Activate()   { fmt.Fprintln(b.out, "LightBulb: Turned ON") }
func (b *LightBulb) Deactivate() { fmt.Fprintln(b.out, "LightBulb: Turned OFF") }

type Fan struct {
	out io.Writer
}

func NewFan(out io.Writer) *Fan { return &Fan{out: out} }

func (f *Fan) Activate()   { fmt.Fprintln(f.out, "Fan: Turned ON") }
func (f *Fan) Deactivate() { fmt.Fprintln(f.out, "Fan: Turned OFF") }

// ElectricPowerSwitch toggles whatever device it was given.
type ElectricPowerSwitch struct {
	device Switchable
	on     bool
}

func NewElectricPowerSwitch(device Switchable) *ElectricPowerSwitch {
	return &ElectricPowerSwitch{device: device}
}

func (s *ElectricPowerSwitch) Press() {
	if s.on {
		s.device.Deactivate()
		s.on = false
	} else {
		s.device.Activate()
		s.on = true
	}
	logger.Debug("switch pressed", zap.String("device", fmt.Sprintf("%T", s.device)), zap.Bool("on", s.on))
}

func (s *ElectricPowerSwitch) IsOn() bool { return s.on }

var (
	_ Switchable = (*LightBulb)(nil)
	_ Switchable = (*Fan)(nil)
)
