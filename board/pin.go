package board

import "strconv"

// Pin is a GPIO number on the SoC. The zero value is "unassigned", so a
// profile literal that forgets a field is caught by Validate rather than
// silently binding GPIO0.
type Pin struct {
	n  uint8
	ok bool
}

// GPIO returns the pin for GPIO number n.
func GPIO(n uint8) Pin { return Pin{n: n, ok: true} }

// Assigned reports whether the pin was set.
func (p Pin) Assigned() bool { return p.ok }

// Number returns the GPIO number, or -1 when unassigned.
func (p Pin) Number() int {
	if !p.ok {
		return -1
	}
	return int(p.n)
}

func (p Pin) String() string {
	if !p.ok {
		return "unassigned"
	}
	return "GPIO" + strconv.Itoa(int(p.n))
}

// OptionalPin is a pin some revisions do not wire. Consumers must go through
// Get and handle absence.
type OptionalPin struct {
	p Pin
}

// SomePin wraps p as present.
func SomePin(p Pin) OptionalPin { return OptionalPin{p: p} }

// NoPin is the absent value.
var NoPin OptionalPin

func (o OptionalPin) Get() (Pin, bool) { return o.p, o.p.ok }

func (o OptionalPin) String() string {
	if !o.p.ok {
		return "absent"
	}
	return o.p.String()
}

// AudioPort names a hardware I2S peripheral instance. Zero is unassigned.
type AudioPort uint8

const (
	I2S0 AudioPort = iota + 1
	I2S1
)

func (a AudioPort) String() string {
	switch a {
	case I2S0:
		return "i2s0"
	case I2S1:
		return "i2s1"
	default:
		return "unassigned"
	}
}

// TouchChannel is an opaque capacitive-touch channel identifier. How a
// channel maps to a GPIO is left to the platform.
type TouchChannel struct {
	n  uint8
	ok bool
}

// Touch returns touch channel n (T<n> in vendor documentation).
func Touch(n uint8) TouchChannel { return TouchChannel{n: n, ok: true} }

func (t TouchChannel) Assigned() bool { return t.ok }

// Channel returns the channel number, or -1 when unassigned.
func (t TouchChannel) Channel() int {
	if !t.ok {
		return -1
	}
	return int(t.n)
}

func (t TouchChannel) String() string {
	if !t.ok {
		return "unassigned"
	}
	return "T" + strconv.Itoa(int(t.n))
}
