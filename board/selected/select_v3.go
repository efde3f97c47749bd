//go:build board_v3

package selected

import "onjucode-go/board"

func init() { compiled = append(compiled, board.V3) }
