// Package violation wires the power switch straight to a concrete bulb.
package violation

import (
	"fmt"
	"io"

	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

// LightBulb low-level module
type LightBulb struct {
	out io.Writer
}

func NewLightBulb(out io.Writer) *LightBulb {
	return &LightBulb{out: out}
}

func (b *LightBulb) TurnOn() {
	fmt.Fprintln(b.out, "LightBulb: Turned ON")
}

func (b *LightBulb) TurnOff() {
	fmt.Fprintln(b.out, "LightBulb: Turned OFF")
}

// ElectricPowerSwitch high-level module.
// It builds its own *LightBulb, so it can never drive anything else.
type ElectricPowerSwitch struct {
	bulb *LightBulb
	on   bool
}

func NewElectricPowerSwitch(out io.Writer) *ElectricPowerSwitch {
	return &ElectricPowerSwitch{bulb: NewLightBulb(out)}
}

func (s *ElectricPowerSwitch) Press() {
	if s.on {
		s.bulb.TurnOff()
		s.on = false
	} else {
		s.bulb.TurnOn()
		s.on = true
	}
	logger.Debug("switch pressed", zap.String("device", "LightBulb"), zap.Bool("on", s.on))
}

func (s *ElectricPowerSwitch) IsOn() bool { return s.on }
