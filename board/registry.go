// Package board is the registry of onju board revisions and the resource
// bindings each one exposes.
//
// Resolution is a single validated lookup over a fixed table. Every failure
// is a configuration error meant to stop the build or start-up sequence; none
// is retried.
package board

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"onjucode-go/errcode"
)

// Revision names a hardware variant ("V1", "V2", …).
type Revision string

// Tag is the build tag that selects the revision, e.g. "board_v1".
func (r Revision) Tag() string { return "board_" + strings.ToLower(string(r)) }

const (
	opResolve  = "board.Resolve"
	opValidate = "board.Validate"
)

// Revisions returns the registered revisions in sorted order.
func Revisions() []Revision {
	return slices.Sorted(maps.Keys(profiles))
}

// Resolve returns the profile for the single revision in sel.
func Resolve(sel ...Revision) (Profile, error) {
	switch len(sel) {
	case 0:
		return Profile{}, errcode.New(errcode.NoSelector, opResolve,
			"no board revision selected; build with one of -tags "+tagList())
	case 1:
	default:
		names := make([]string, len(sel))
		for i, r := range sel {
			names[i] = string(r)
		}
		return Profile{}, errcode.New(errcode.MultipleSelectors, opResolve,
			"exactly one revision may be selected, got "+strings.Join(names, ", "))
	}

	rev := sel[0]
	p, ok := profiles[rev]
	if !ok {
		return Profile{}, errcode.New(errcode.UnknownSelector, opResolve,
			strconv.Quote(string(rev))+" is not registered (known: "+revList()+")")
	}
	if err := Validate(rev, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Lookup returns the raw table entry without validation.
func Lookup(rev Revision) (Profile, bool) {
	p, ok := profiles[rev]
	return p, ok
}

// ValidateAll checks every registered profile and returns all violations.
func ValidateAll() error {
	var errs error
	for _, rev := range Revisions() {
		errs = multierr.Append(errs, Validate(rev, profiles[rev]))
	}
	return errs
}

// Validate checks that p is complete and that no two logical resources
// share a GPIO or touch channel. All violations are reported together.
func Validate(rev Revision, p Profile) error {
	var errs error
	missing := func(field string) {
		errs = multierr.Append(errs, errcode.New(errcode.IncompleteProfile, opValidate,
			string(rev)+": missing "+field))
	}

	switch {
	case p.Name == "":
		missing("name")
	case p.Name != string(rev):
		errs = multierr.Append(errs, errcode.New(errcode.IncompleteProfile, opValidate,
			string(rev)+": name "+strconv.Quote(p.Name)+" does not match revision"))
	}
	if p.Audio.Port == 0 {
		missing("audio.port")
	}
	if p.LEDCount <= 0 {
		errs = multierr.Append(errs, errcode.New(errcode.IncompleteProfile, opValidate,
			string(rev)+": led_count must be positive"))
	}

	owner := map[Pin]string{}
	for _, c := range p.Claims() {
		if !c.Pin.Assigned() {
			missing(c.Name)
			continue
		}
		if prev, dup := owner[c.Pin]; dup {
			errs = multierr.Append(errs, errcode.New(errcode.PinAlias, opValidate,
				string(rev)+": "+prev+" and "+c.Name+" share "+c.Pin.String()))
			continue
		}
		owner[c.Pin] = c.Name
	}

	touch := map[TouchChannel]string{}
	for _, tc := range []struct {
		name string
		ch   TouchChannel
	}{
		{"touch.left", p.TouchLeft},
		{"touch.center", p.TouchCenter},
		{"touch.right", p.TouchRight},
	} {
		if !tc.ch.Assigned() {
			missing(tc.name)
			continue
		}
		if prev, dup := touch[tc.ch]; dup {
			errs = multierr.Append(errs, errcode.New(errcode.PinAlias, opValidate,
				string(rev)+": "+prev+" and "+tc.name+" share "+tc.ch.String()))
			continue
		}
		touch[tc.ch] = tc.name
	}
	return errs
}

func tagList() string {
	revs := Revisions()
	tags := make([]string, len(revs))
	for i, r := range revs {
		tags[i] = r.Tag()
	}
	return strings.Join(tags, ", ")
}

func revList() string {
	revs := Revisions()
	names := make([]string, len(revs))
	for i, r := range revs {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
