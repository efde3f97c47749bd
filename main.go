package main

import (
	"time"

	"onjucode-go/board"
	"onjucode-go/board/selected"
	"onjucode-go/platform"
	"onjucode-go/services/outputs"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot")

	p, err := selected.Profile()
	if err != nil {
		halt(err)
	}
	printProfile(p)

	outs, err := outputs.Bringup(p, platform.DefaultPinFactory())
	if err != nil {
		halt(err)
	}
	if err := outs.ClearStrip(platform.NewStrip(outs.LEDPin())); err != nil {
		println("[main] led strip:", err.Error())
	}
	if !outs.HasAmplifierControl() {
		println("[main] no speaker-enable line; amplifier is always on")
	}
	if p.ExternalMemory {
		println("[main] board carries PSRAM")
	}

	// Periodic heartbeat.
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for t := range tick.C {
		println(t.Format("15:04:05"), "Heartbeat", p.Name)
	}
}

// halt reports a configuration error and never returns. Start-up cannot
// continue without a valid board.
func halt(err error) {
	for {
		println("[main] FATAL:", err.Error())
		time.Sleep(5 * time.Second)
	}
}

func printProfile(p board.Profile) {
	println("[board]", p.Name)
	println("[board] i2s", p.Audio.Port.String(),
		"bck", p.Audio.Clock.Number(), "ws", p.Audio.WordSelect.Number(),
		"in", p.Audio.DataIn.Number(), "out", p.Audio.DataOut.Number())
	println("[board] mute", p.Mute.Number(), "spk_en", p.SpeakerEnable.String())
	println("[board] led", p.LED.Number(), "count", p.LEDCount)
	println("[board] touch", p.TouchLeft.String(), p.TouchCenter.String(), p.TouchRight.String())
}
