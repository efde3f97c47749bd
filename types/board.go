package types

// ------------------------
// Board profile (retained, diagnostic)
// ------------------------

// BoardInfo is the JSON-facing snapshot of a resolved board profile.
// Pins are plain GPIO numbers; absent optional pins are omitted.
type BoardInfo struct {
	Revision       string       `json:"revision"`
	Audio          AudioBusInfo `json:"audio"`
	Mute           int          `json:"mute"`
	SpeakerEnable  *int         `json:"speaker_enable,omitempty"`
	LED            int          `json:"led"`
	LEDCount       int          `json:"led_count"`
	Touch          TouchInfo    `json:"touch"`
	ExternalMemory bool         `json:"external_memory"`
}

type AudioBusInfo struct {
	Port       string `json:"port"` // "i2s0", "i2s1"
	Clock      int    `json:"clock"`
	WordSelect int    `json:"word_select"`
	DataIn     int    `json:"data_in"`
	DataOut    int    `json:"data_out"`
}

// TouchInfo carries channel labels ("T1", …); numbering is platform-defined.
type TouchInfo struct {
	Left   string `json:"left"`
	Center string `json:"center"`
	Right  string `json:"right"`
}
