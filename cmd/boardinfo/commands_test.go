package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"onjucode-go/types"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"boardinfo"}, args...))
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"V1", "V2", "V3", "board_v2", "T1/T2/T3", "absent", "GPIO47"} {
		if !strings.Contains(out, want) {
			t.Fatalf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestShowJSON(t *testing.T) {
	out, err := run(t, "show", "--json", "V3")
	if err != nil {
		t.Fatal(err)
	}
	var bi types.BoardInfo
	if err := json.Unmarshal([]byte(out), &bi); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if bi.Revision != "V3" || bi.SpeakerEnable == nil || *bi.SpeakerEnable != 21 || !bi.ExternalMemory {
		t.Fatalf("unexpected info: %+v", bi)
	}
}

func TestShowTable(t *testing.T) {
	out, err := run(t, "show", "V2")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"BOARD V2", "GPIO38", "speaker_enable", "absent"} {
		if !strings.Contains(strings.ToUpper(out), strings.ToUpper(want)) {
			t.Fatalf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestShowUnknown(t *testing.T) {
	_, err := run(t, "show", "V99")
	if err == nil || !strings.Contains(err.Error(), "unknown_selector") {
		t.Fatalf("err = %v, want unknown_selector", err)
	}
	if _, err := run(t, "show"); err == nil {
		t.Fatal("missing argument accepted")
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "ok: 3 revisions valid") {
		t.Fatalf("check output %q", out)
	}
}
