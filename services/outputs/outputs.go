// Package outputs brings up the board's digital outputs at start-up: it
// claims every pin the resolved profile binds, parks the audio path muted
// with the amplifier off, and blanks the status strip.
package outputs

import (
	"image/color"

	"onjucode-go/board"
	"onjucode-go/platform"
)

// Outputs holds the claimed control lines.
type Outputs struct {
	reg  *pinRegistry
	mute platform.GPIOPin
	amp  platform.GPIOPin // nil when the revision has no speaker-enable line
	led  platform.GPIOPin

	ledCount int
}

// Bringup claims the pins of p from pins. Mute is driven asserted and the
// amplifier (when present) disabled.
func Bringup(p board.Profile, pins platform.PinFactory) (*Outputs, error) {
	o := &Outputs{reg: newPinRegistry(pins), ledCount: p.LEDCount}

	for _, c := range p.Claims() {
		h, err := o.reg.ClaimPin(c.Name, c.Pin.Number())
		if err != nil {
			return nil, err
		}
		switch c.Name {
		case "mute":
			o.mute = h
		case "speaker_enable":
			o.amp = h
		case "led":
			o.led = h
		}
	}

	if err := o.mute.ConfigureOutput(true); err != nil {
		return nil, err
	}
	if o.amp != nil {
		if err := o.amp.ConfigureOutput(false); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// SetMute drives the hardware mute line.
func (o *Outputs) SetMute(muted bool) { o.mute.Set(muted) }

// Muted reports the mute line level.
func (o *Outputs) Muted() bool { return o.mute.Get() }

// HasAmplifierControl reports whether the revision wires a speaker-enable line.
func (o *Outputs) HasAmplifierControl() bool { return o.amp != nil }

// SetAmplifier switches the speaker amplifier. It returns false, doing
// nothing, on revisions without a speaker-enable line.
func (o *Outputs) SetAmplifier(on bool) bool {
	if o.amp == nil {
		return false
	}
	o.amp.Set(on)
	return true
}

// Owner reports which logical resource holds GPIO n.
func (o *Outputs) Owner(n int) (string, bool) { return o.reg.Owner(n) }

// LEDPin is the claimed strip data line.
func (o *Outputs) LEDPin() platform.GPIOPin { return o.led }

// ClearStrip writes one all-off frame of LEDCount pixels.
func (o *Outputs) ClearStrip(s platform.Strip) error {
	return s.WriteColors(make([]color.RGBA, o.ledCount))
}
