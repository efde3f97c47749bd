// Package selected binds the board revision chosen at build time.
//
// Exactly one of the build tags board_v1, board_v2, board_v3 must be set:
//
//	tinygo flash -target esp32s3 -tags board_v2 .
//
// Builds with several tags do not compile; TinyGo builds with none do not
// compile either. Host builds with no tag compile and fail at start-up with
// errcode.NoSelector so tests and tools can run untagged.
package selected

import "onjucode-go/board"

// compiled is filled by the build-tagged init functions in this package.
var compiled []board.Revision

// Selectors returns the revisions selected by build tags.
func Selectors() []board.Revision {
	return append([]board.Revision(nil), compiled...)
}

// Profile resolves the build-selected revision.
func Profile() (board.Profile, error) {
	return board.Resolve(compiled...)
}

// MustProfile is Profile for start-up code that cannot continue without a board.
func MustProfile() board.Profile {
	p, err := Profile()
	if err != nil {
		panic(err.Error())
	}
	return p
}
