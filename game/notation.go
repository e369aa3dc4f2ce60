package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedMove is the cause of every ParseMove failure.
var ErrMalformedMove = errors.New("malformed move")

const (
	boomVerb    = "Boom"
	zoomVerb    = "Zoom"
	scoreVerb   = "Score"
	concedeVerb = "Concede"
)

// MarshalText writes the single-line wire form of the move, e.g. "Zoom 2 19".
func (m Move) MarshalText() ([]byte, error) {
	switch m.Kind {
	case CaptureMove:
		return []byte(boomVerb + " " + strconv.Itoa(m.Piece)), nil
	case RelocateMove:
		return []byte(zoomVerb + " " + strconv.Itoa(m.Piece) + " " + strconv.Itoa(m.To.Index())), nil
	case ScoreMove:
		return []byte(scoreVerb + " " + strconv.Itoa(m.Piece)), nil
	case ForfeitMove:
		if m.Color != First && m.Color != Second {
			return nil, errors.Errorf("cannot encode forfeit by %v", m.Color)
		}
		return []byte(concedeVerb + " " + m.Color.String()), nil
	default:
		return nil, errors.Errorf("cannot encode move kind %d", m.Kind)
	}
}

func (m *Move) UnmarshalText(text []byte) error {
	move, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = move
	return nil
}

// ParseMove is the inverse of MarshalText. Surrounding whitespace, including a trailing
// newline, is ignored; anything else out of place is rejected.
func ParseMove(line string) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Move{}, errors.Wrap(ErrMalformedMove, "empty line")
	}

	verb, args := fields[0], fields[1:]
	want := 1
	if verb == zoomVerb {
		want = 2
	}
	switch verb {
	case boomVerb, zoomVerb, scoreVerb, concedeVerb:
		if len(args) != want {
			return Move{}, errors.Wrapf(ErrMalformedMove, "%s takes %d operand(s), got %q", verb, want, line)
		}
	default:
		return Move{}, errors.Wrapf(ErrMalformedMove, "unknown verb in %q", line)
	}

	if verb == concedeVerb {
		switch args[0] {
		case First.String():
			return Forfeit(First), nil
		case Second.String():
			return Forfeit(Second), nil
		default:
			return Move{}, errors.Wrapf(ErrMalformedMove, "unknown color %q", args[0])
		}
	}

	piece, err := parseOperand(args[0], NumPieces, "piece index")
	if err != nil {
		return Move{}, err
	}
	switch verb {
	case boomVerb:
		return Capture(piece), nil
	case scoreVerb:
		return Score(piece), nil
	}
	to, err := parseOperand(args[1], BoardSize*BoardSize, "position index")
	if err != nil {
		return Move{}, err
	}
	return Relocate(piece, PositionFromIndex(to)), nil
}

func parseOperand(token string, limit int, name string) (int, error) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedMove, "%s %q is not a number", name, token)
	}
	if value < 0 || value >= limit {
		return 0, errors.Wrapf(ErrMalformedMove, "%s %d outside 0-%d", name, value, limit-1)
	}
	return value, nil
}
