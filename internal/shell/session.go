package shell

import (
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper/internal/game"
)

const hiddenChar = "-"

type Session struct {
	SessionId string
	Board     *game.Board
	StartedAt time.Time
}

func NewSession(board *game.Board) *Session {
	u := [16]byte(uuid.New())
	sessionId := base64.RawURLEncoding.EncodeToString(u[:])
	return &Session{
		SessionId: sessionId,
		Board:     board,
		StartedAt: time.Now().UTC(),
	}
}

// Render writes the grid one row per line. Unrevealed cells are printed
// as [hiddenChar] unless showHidden is set.
func Render(w io.Writer, board *game.Board, showHidden bool) {
	col := 0
	for c := range board.Cells() {
		value := c.Value().String()
		if !showHidden && !c.Revealed() {
			value = hiddenChar
		}
		fmt.Fprintf(w, "%2s ", value)
		col++
		if col == board.Cols() {
			fmt.Fprintln(w)
			col = 0
		}
	}
}
