//go:build board_v1

package selected

import "onjucode-go/board"

func init() { compiled = append(compiled, board.V1) }
