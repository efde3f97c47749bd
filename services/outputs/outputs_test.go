package outputs

import (
	"errors"
	"testing"

	"onjucode-go/board"
	"onjucode-go/errcode"
	"onjucode-go/platform"
)

func bringup(t *testing.T, rev board.Revision) (*Outputs, *platform.HostPinFactory, board.Profile) {
	t.Helper()
	p, err := board.Resolve(rev)
	if err != nil {
		t.Fatalf("Resolve(%s): %v", rev, err)
	}
	pins := &platform.HostPinFactory{}
	o, err := Bringup(p, pins)
	if err != nil {
		t.Fatalf("Bringup(%s): %v", rev, err)
	}
	return o, pins, p
}

func TestBringupParksOutputs(t *testing.T) {
	for _, rev := range board.Revisions() {
		o, pins, p := bringup(t, rev)

		mute, ok := pins.Get(p.Mute.Number())
		if !ok || !mute.IsOutput() || !mute.Get() {
			t.Fatalf("%s: mute not driven asserted", rev)
		}
		if !o.Muted() {
			t.Fatalf("%s: Muted() = false after bring-up", rev)
		}

		se, present := p.SpeakerEnable.Get()
		if o.HasAmplifierControl() != present {
			t.Fatalf("%s: HasAmplifierControl = %v, want %v", rev, o.HasAmplifierControl(), present)
		}
		if present {
			amp, _ := pins.Get(se.Number())
			if !amp.IsOutput() || amp.Get() {
				t.Fatalf("%s: amplifier not driven off", rev)
			}
		}

		for _, c := range p.Claims() {
			owner, ok := o.Owner(c.Pin.Number())
			if !ok || owner != c.Name {
				t.Fatalf("%s: GPIO%d owner = %q, want %q", rev, c.Pin.Number(), owner, c.Name)
			}
		}
	}
}

func TestSetAmplifierGatedOnPresence(t *testing.T) {
	o, pins, p := bringup(t, board.V3)
	if !o.SetAmplifier(true) {
		t.Fatal("V3: SetAmplifier reported no control")
	}
	se, _ := p.SpeakerEnable.Get()
	amp, _ := pins.Get(se.Number())
	if !amp.Get() {
		t.Fatal("V3: amplifier line not raised")
	}

	o, pins, _ = bringup(t, board.V2)
	before := 0
	for n := 0; n <= platform.MaxGPIO; n++ {
		if fp, ok := pins.Get(n); ok {
			before += fp.Writes()
		}
	}
	if o.SetAmplifier(true) {
		t.Fatal("V2: SetAmplifier reported control on a board without speaker enable")
	}
	after := 0
	for n := 0; n <= platform.MaxGPIO; n++ {
		if fp, ok := pins.Get(n); ok {
			after += fp.Writes()
		}
	}
	if after != before {
		t.Fatalf("V2: SetAmplifier wrote a pin (%d -> %d writes)", before, after)
	}
}

func TestSetMute(t *testing.T) {
	o, pins, p := bringup(t, board.V1)
	o.SetMute(false)
	mute, _ := pins.Get(p.Mute.Number())
	if mute.Get() || o.Muted() {
		t.Fatal("mute still asserted")
	}
}

func TestClaimPinErrors(t *testing.T) {
	r := newPinRegistry(platform.DefaultPinFactory())
	if _, err := r.ClaimPin("mute", 33); err != nil {
		t.Fatal(err)
	}
	_, err := r.ClaimPin("led", 33)
	if !errors.Is(err, errcode.PinInUse) {
		t.Fatalf("second claim: err = %v, want pin_in_use", err)
	}
	if want := "outputs.ClaimPin: pin_in_use: led: GPIO33 held by mute"; err.Error() != want {
		t.Fatalf("err = %q, want %q", err, want)
	}
	if _, err := r.ClaimPin("led", 99); !errors.Is(err, errcode.UnknownPin) {
		t.Fatalf("out of range: err = %v, want unknown_pin", err)
	}
}

func TestBringupRejectsUnknownPin(t *testing.T) {
	p, _ := board.Lookup(board.V1)
	p.LED = board.GPIO(60)
	if _, err := Bringup(p, platform.DefaultPinFactory()); !errors.Is(err, errcode.UnknownPin) {
		t.Fatalf("err = %v, want unknown_pin", err)
	}
}

func TestClearStrip(t *testing.T) {
	o, _, p := bringup(t, board.V2)
	s := platform.NewStrip(o.LEDPin()).(*platform.FakeStrip)
	if s.Pin != p.LED.Number() {
		t.Fatalf("strip on GPIO%d, want %d", s.Pin, p.LED.Number())
	}
	if err := o.ClearStrip(s); err != nil {
		t.Fatal(err)
	}
	frame, n := s.Last()
	if n != 1 || len(frame) != p.LEDCount {
		t.Fatalf("frame = %d pixels after %d writes", len(frame), n)
	}
	for i, c := range frame {
		if c.R|c.G|c.B != 0 {
			t.Fatalf("pixel %d lit: %v", i, c)
		}
	}
}
