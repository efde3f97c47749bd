package board

// Registered revisions. Adding one is a table entry here plus a build-tag
// file in board/selected; Resolve does not change.
const (
	V1 Revision = "V1"
	V2 Revision = "V2"
	V3 Revision = "V3"
)

var profiles = map[Revision]Profile{
	V1: {
		Name: "V1",
		Audio: AudioBus{
			Port:       I2S0,
			Clock:      GPIO(40),
			WordSelect: GPIO(42),
			DataIn:     GPIO(41),
			DataOut:    GPIO(17),
		},
		Mute:          GPIO(33),
		SpeakerEnable: SomePin(GPIO(47)),
		LED:           GPIO(48),
		LEDCount:      6,
		TouchLeft:     Touch(1),
		TouchCenter:   Touch(2),
		TouchRight:    Touch(3),
	},
	V2: {
		Name: "V2",
		Audio: AudioBus{
			Port:       I2S0,
			Clock:      GPIO(18),
			WordSelect: GPIO(13),
			DataIn:     GPIO(17),
			DataOut:    GPIO(12),
		},
		Mute:           GPIO(38),
		LED:            GPIO(11),
		LEDCount:       6,
		TouchLeft:      Touch(2),
		TouchCenter:    Touch(3),
		TouchRight:     Touch(4),
		ExternalMemory: true,
	},
	V3: {
		Name: "V3",
		Audio: AudioBus{
			Port:       I2S0,
			Clock:      GPIO(18),
			WordSelect: GPIO(13),
			DataIn:     GPIO(17),
			DataOut:    GPIO(12),
		},
		Mute:           GPIO(38),
		SpeakerEnable:  SomePin(GPIO(21)),
		LED:            GPIO(11),
		LEDCount:       6,
		TouchLeft:      Touch(2),
		TouchCenter:    Touch(3),
		TouchRight:     Touch(4),
		ExternalMemory: true,
	},
}
