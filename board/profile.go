package board

import "onjucode-go/types"

// AudioBus is the I2S wiring: bit clock, word select, mic in, speaker out.
type AudioBus struct {
	Port       AudioPort
	Clock      Pin
	WordSelect Pin
	DataIn     Pin
	DataOut    Pin
}

// Profile is the complete resource binding for one board revision.
// Profiles are literals in the registry table and are never mutated.
type Profile struct {
	Name  string
	Audio AudioBus

	Mute          Pin
	SpeakerEnable OptionalPin // absent on V2

	LED      Pin // WS2812 data line
	LEDCount int

	TouchLeft   TouchChannel
	TouchCenter TouchChannel
	TouchRight  TouchChannel

	// ExternalMemory is set when the revision carries PSRAM that firmware
	// must initialise.
	ExternalMemory bool
}

// Claim is one logical name bound to a GPIO.
type Claim struct {
	Name string
	Pin  Pin
}

// Claims lists the pins the profile binds, in a stable order. Unassigned
// mandatory pins are included so callers can report them; an absent
// speaker-enable line is not.
func (p Profile) Claims() []Claim {
	c := []Claim{
		{"audio.clock", p.Audio.Clock},
		{"audio.word_select", p.Audio.WordSelect},
		{"audio.data_in", p.Audio.DataIn},
		{"audio.data_out", p.Audio.DataOut},
		{"mute", p.Mute},
	}
	if pin, ok := p.SpeakerEnable.Get(); ok {
		c = append(c, Claim{"speaker_enable", pin})
	}
	return append(c, Claim{"led", p.LED})
}

// Info returns the JSON-facing snapshot.
func (p Profile) Info() types.BoardInfo {
	bi := types.BoardInfo{
		Revision: p.Name,
		Audio: types.AudioBusInfo{
			Port:       p.Audio.Port.String(),
			Clock:      p.Audio.Clock.Number(),
			WordSelect: p.Audio.WordSelect.Number(),
			DataIn:     p.Audio.DataIn.Number(),
			DataOut:    p.Audio.DataOut.Number(),
		},
		Mute:     p.Mute.Number(),
		LED:      p.LED.Number(),
		LEDCount: p.LEDCount,
		Touch: types.TouchInfo{
			Left:   p.TouchLeft.String(),
			Center: p.TouchCenter.String(),
			Right:  p.TouchRight.String(),
		},
		ExternalMemory: p.ExternalMemory,
	}
	if pin, ok := p.SpeakerEnable.Get(); ok {
		n := pin.Number()
		bi.SpeakerEnable = &n
	}
	return bi
}
