//go:build tinygo && !board_v1 && !board_v2 && !board_v3

package selected

// Does not compile: the error text is the diagnostic.
var _ int = "selected: no board_* build tag set; build firmware with -tags board_v1, board_v2 or board_v3"
