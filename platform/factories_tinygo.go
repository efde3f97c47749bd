//go:build tinygo

package platform

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

type machinePinFactory struct{}

type machinePin struct {
	p machine.Pin
	n int
}

func (machinePinFactory) ByNumber(n int) (GPIOPin, bool) {
	if n < 0 || n > MaxGPIO {
		return nil, false
	}
	return &machinePin{p: machine.Pin(n), n: n}, true
}

func (m *machinePin) ConfigureOutput(initial bool) error {
	m.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	m.p.Set(initial)
	return nil
}
func (m *machinePin) Set(b bool)  { m.p.Set(b) }
func (m *machinePin) Get() bool   { return m.p.Get() }
func (m *machinePin) Number() int { return m.n }

// DefaultPinFactory provides machine-backed GPIO.
func DefaultPinFactory() PinFactory { return machinePinFactory{} }

// NewStrip drives a WS2812 strip on the given data pin.
func NewStrip(pin GPIOPin) Strip {
	p := machine.Pin(pin.Number())
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return ws2812.New(p)
}
