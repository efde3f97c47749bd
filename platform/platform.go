// Package platform supplies GPIO pins and the LED strip to start-up code.
// TinyGo builds use machine pins and the ws2812 driver; host builds use
// in-memory fakes so consumers can be tested without hardware.
package platform

import "image/color"

// MaxGPIO is the highest GPIO number on the ESP32-S3.
const MaxGPIO = 48

// GPIOPin is the subset of pin behaviour start-up code needs.
type GPIOPin interface {
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// PinFactory hands out pins by GPIO number.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// Strip is an addressable LED strip (compatible with ws2812.Device).
type Strip interface {
	WriteColors(buf []color.RGBA) error
}
