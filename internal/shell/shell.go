package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/solver"
)

const prompt = "Write quit to leave, hint for a safe cell or the coordinates row,col"

type Shell struct {
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	params game.Params
	placer game.Placer
}

func New(
	logger *slog.Logger,
	in io.Reader,
	out io.Writer,
	params game.Params,
	placer game.Placer,
) *Shell {
	return &Shell{
		logger: logger,
		in:     in,
		out:    out,
		params: params,
		placer: placer,
	}
}

// Run plays a single game until it ends, the player quits, input runs out
// or ctx is cancelled. The goroutine reading s.in is not interrupted by
// cancellation; it stays blocked until the reader returns.
func (s *Shell) Run(ctx context.Context) error {
	board, err := game.New(s.params, s.placer)
	if err != nil {
		return fmt.Errorf("unable to create board: %w", err)
	}
	session := NewSession(board)
	logger := s.logger.With(slog.String("session", session.SessionId))
	logger.Info(
		"game started",
		slog.Int("rows", board.Rows()),
		slog.Int("cols", board.Cols()),
		slog.Int("mines", board.MineCount()),
	)

	var (
		lines = make(chan string)
		errCh = make(chan error, 1)
		stop  = make(chan struct{})
	)
	defer close(stop)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		errCh <- scanner.Err()
	}()

	for {
		fmt.Fprintln(s.out, prompt)

		var line string
		select {
		case <-ctx.Done():
			logger.Info("game interrupted", slog.Int("moves", board.Moves()))
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-errCh; err != nil {
					return fmt.Errorf("unable to read input: %w", err)
				}
				s.finish(logger, session, "input closed")
				return nil
			}
			line = l
		}

		if s.handle(logger, session, line) {
			return nil
		}
	}
}

// handle processes one line of input and reports whether the session is over.
func (s *Shell) handle(logger *slog.Logger, session *Session, line string) bool {
	board := session.Board
	line = strings.TrimSpace(line)

	switch strings.ToLower(line) {
	case "", "quit":
		s.finish(logger, session, "player quit")
		return true
	case "hint":
		if p, ok := solver.Hint(board); ok {
			fmt.Fprintf(s.out, "Try %d,%d\n", p.Row, p.Col)
		} else {
			fmt.Fprintln(s.out, "No safe cell can be deduced")
		}
		return false
	}

	move, err := ParseMove(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input:", line)
		logger.Debug("malformed move", slog.String("input", line), slog.Any("error", err))
		return false
	}

	update, err := board.Select(move.Row, move.Col)
	switch {
	case errors.Is(err, game.ErrInvalidField):
		fmt.Fprintln(s.out, "Invalid field")
		return false
	case err != nil:
		fmt.Fprintln(s.out, err)
		return true
	}

	logger.Debug(
		"move",
		slog.Int("row", move.Row),
		slog.Int("col", move.Col),
		slog.Int("revealed", len(update.Cells)),
		slog.String("status", update.Status.String()),
	)

	Render(s.out, board, false)

	if update.Status == game.Ended {
		fmt.Fprintln(s.out, "Game Ended")
		Render(s.out, board, true)
		s.finish(logger, session, "mine selected")
		return true
	}
	if board.Hidden() == 0 {
		fmt.Fprintln(s.out, "Board cleared")
		Render(s.out, board, true)
		s.finish(logger, session, "board cleared")
		return true
	}
	return false
}

func (s *Shell) finish(logger *slog.Logger, session *Session, reason string) {
	fmt.Fprintln(s.out, "Process done")
	logger.Info(
		"game over",
		slog.String("reason", reason),
		slog.Int("moves", session.Board.Moves()),
		slog.String("status", session.Board.Status().String()),
		slog.Duration("duration", time.Since(session.StartedAt)),
	)
}
