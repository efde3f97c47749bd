package main

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"onjucode-go/board"
)

const flagJSON = "json"

func newApp() *cli.App {
	return &cli.App{
		Name:  "boardinfo",
		Usage: "inspect onju board revisions",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "print every registered revision",
				Action: listAction,
			},
			{
				Name:      "show",
				Usage:     "print one revision",
				ArgsUsage: "<revision>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: flagJSON, Usage: "emit JSON"},
				},
				Action: showAction,
			},
			{
				Name:   "check",
				Usage:  "validate every registered revision; non-zero exit on failure",
				Action: checkAction,
			},
		},
	}
}

func listAction(c *cli.Context) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Rev", "Tag", "I2S", "BCK", "WS", "IN", "OUT", "Mute", "Spk EN", "LED", "Touch L/C/R", "PSRAM"})
	for _, rev := range board.Revisions() {
		p, _ := board.Lookup(rev)
		t.AppendRow(profileRow(rev, p))
	}
	_, err := fmt.Fprintln(c.App.Writer, t.Render())
	return err
}

func profileRow(rev board.Revision, p board.Profile) table.Row {
	return table.Row{
		rev,
		rev.Tag(),
		p.Audio.Port,
		p.Audio.Clock.Number(),
		p.Audio.WordSelect.Number(),
		p.Audio.DataIn.Number(),
		p.Audio.DataOut.Number(),
		p.Mute.Number(),
		p.SpeakerEnable,
		fmt.Sprintf("%d x%d", p.LED.Number(), p.LEDCount),
		fmt.Sprintf("%v/%v/%v", p.TouchLeft, p.TouchCenter, p.TouchRight),
		p.ExternalMemory,
	}
}

func showAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: boardinfo show <revision>", 2)
	}
	p, err := board.Resolve(board.Revision(c.Args().First()))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if c.Bool(flagJSON) {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(p.Info())
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Resource", "Binding"})
	t.AppendRow(table.Row{"audio.port", p.Audio.Port})
	for _, cl := range p.Claims() {
		t.AppendRow(table.Row{cl.Name, cl.Pin})
	}
	if _, ok := p.SpeakerEnable.Get(); !ok {
		t.AppendRow(table.Row{"speaker_enable", p.SpeakerEnable})
	}
	t.AppendRow(table.Row{"led_count", p.LEDCount})
	t.AppendRow(table.Row{"touch.left", p.TouchLeft})
	t.AppendRow(table.Row{"touch.center", p.TouchCenter})
	t.AppendRow(table.Row{"touch.right", p.TouchRight})
	t.AppendRow(table.Row{"external_memory", p.ExternalMemory})
	t.SetTitle("board " + p.Name)
	_, err = fmt.Fprintln(c.App.Writer, t.Render())
	return err
}

func checkAction(c *cli.Context) error {
	if err := board.ValidateAll(); err != nil {
		msg := ""
		for _, e := range multierr.Errors(err) {
			msg += e.Error() + "\n"
		}
		return cli.Exit(msg, 1)
	}
	_, err := fmt.Fprintf(c.App.Writer, "ok: %d revisions valid\n", len(board.Revisions()))
	return err
}
