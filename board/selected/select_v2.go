//go:build board_v2

package selected

import "onjucode-go/board"

func init() { compiled = append(compiled, board.V2) }
