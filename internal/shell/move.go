package shell

import (
	"errors"
	"strings"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

var ErrMalformedMove = errors.New("expected coordinates as row,col")

type Move struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParseMove(line string) (Move, error) {
	row, col, found := strings.Cut(line, ",")
	row, col = strings.TrimSpace(row), strings.TrimSpace(col)
	if !found || row == "" || col == "" || strings.Contains(col, ",") {
		return Move{}, ErrMalformedMove
	}

	var move Move
	err := decoder.Decode(&move, map[string][]string{
		"row": {row},
		"col": {col},
	})
	if err != nil {
		return Move{}, errors.Join(ErrMalformedMove, err)
	}
	return move, nil
}
