//go:build (board_v1 && board_v2) || (board_v1 && board_v3) || (board_v2 && board_v3)

package selected

// Does not compile: the error text is the diagnostic.
var _ int = "selected: more than one board_* build tag set; choose exactly one of board_v1, board_v2, board_v3"
