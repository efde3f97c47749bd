package selected

import (
	"errors"
	"testing"

	"onjucode-go/errcode"
)

// Run untagged, and once per tag in CI:
//
//	go test ./board/selected -tags board_v3
func TestProfileFollowsBuildTags(t *testing.T) {
	sel := Selectors()
	p, err := Profile()
	switch len(sel) {
	case 0:
		if !errors.Is(err, errcode.NoSelector) {
			t.Fatalf("untagged build: err = %v, want no_selector", err)
		}
	case 1:
		if err != nil {
			t.Fatalf("Profile(): %v", err)
		}
		if p.Name != string(sel[0]) {
			t.Fatalf("Profile().Name = %q, want %q", p.Name, sel[0])
		}
	default:
		t.Fatalf("compiled with %d selectors: %v", len(sel), sel)
	}
}

func TestMustProfilePanicsWithoutSelector(t *testing.T) {
	if len(Selectors()) != 0 {
		t.Skip("board tag set")
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if s, _ := r.(string); s == "" {
			t.Fatalf("panic value %#v is not a diagnostic string", r)
		}
	}()
	MustProfile()
}
