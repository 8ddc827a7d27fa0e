package game

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const StartSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

var sfenLetters = map[rune]PieceType{
	'k': King, 'g': Gold, 'r': Rook, 'b': Bishop, 's': Silver, 'l': Lance, 'n': Knight, 'p': Pawn,
}

// No piece type has more than 18 copies.
const maxHandCount = 18

// Hands are written in this order, black first.
var sfenHandOrder = [...]PieceType{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

func sfenLetter(t PieceType) rune {
	for r, pt := range sfenLetters {
		if pt == t {
			return r
		}
	}
	return '?'
}

// SFEN returns the piece letter, upper case for black, with a leading '+'
// when promoted.
func (p Piece) SFEN() string {
	t := p.Type()
	if t == Empty {
		return ""
	}
	letter := sfenLetter(t.Base())
	if p.Owner() == Black {
		letter = unicode.ToUpper(letter)
	}
	if t.IsPromoted() {
		return "+" + string(letter)
	}
	return string(letter)
}

// ParseSFEN reads a position written from black's point of view. The move
// number is optional and defaults to 1.
func ParseSFEN(text string) (*GameState, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 && len(fields) != 4 {
		return nil, fmt.Errorf("%w: expected 3 or 4 fields, got %d", ErrInvalidSFEN, len(fields))
	}

	board, err := parseSFENBoard(fields[0])
	if err != nil {
		return nil, err
	}

	var player Player
	switch fields[1] {
	case "b":
		player = Black
	case "w":
		player = White
		board = board.Rotate()
	default:
		return nil, fmt.Errorf("%w: unknown side %q", ErrInvalidSFEN, fields[1])
	}

	hands, err := parseSFENHands(fields[2])
	if err != nil {
		return nil, err
	}

	s := NewGameState(board, hands, player, nil)
	if len(fields) == 4 {
		n, err := strconv.Atoi(fields[3])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: bad move number %q", ErrInvalidSFEN, fields[3])
		}
		s.MoveNumber = n
	}
	return s, nil
}

func parseSFENBoard(text string) (Board, error) {
	var b Board
	rows := strings.Split(text, "/")
	if len(rows) != BoardSize {
		return b, fmt.Errorf("%w: expected %d ranks, got %d", ErrInvalidSFEN, BoardSize, len(rows))
	}

	for r, row := range rows {
		f := 0
		promoted := false
		for _, c := range row {
			switch {
			case c == '+':
				promoted = true
				continue
			case c >= '1' && c <= '9':
				if promoted {
					return b, fmt.Errorf("%w: dangling '+' in rank %d", ErrInvalidSFEN, r+1)
				}
				f += int(c - '0')
				continue
			}

			t, ok := sfenLetters[unicode.ToLower(c)]
			if !ok {
				return b, fmt.Errorf("%w: unknown piece %q", ErrInvalidSFEN, c)
			}
			if promoted {
				if !t.Promotable() {
					return b, fmt.Errorf("%w: %s cannot be promoted", ErrInvalidSFEN, t)
				}
				t = t.Promoted()
				promoted = false
			}
			if f >= BoardSize {
				return b, fmt.Errorf("%w: rank %d is too long", ErrInvalidSFEN, r+1)
			}
			owner := White
			if unicode.IsUpper(c) {
				owner = Black
			}
			b[r][f] = NewPiece(t, owner)
			f++
		}
		if f != BoardSize || promoted {
			return b, fmt.Errorf("%w: rank %d does not have %d files", ErrInvalidSFEN, r+1, BoardSize)
		}
	}
	return b, nil
}

func parseSFENHands(text string) ([2]Hand, error) {
	var hands [2]Hand
	if text == "-" {
		return hands, nil
	}

	count, digits := 0, false
	for _, c := range text {
		if unicode.IsDigit(c) {
			count = count*10 + int(c-'0')
			digits = true
			if count > maxHandCount {
				return hands, fmt.Errorf("%w: hand count above %d in %q", ErrInvalidSFEN, maxHandCount, text)
			}
			continue
		}
		t, ok := sfenLetters[unicode.ToLower(c)]
		if !ok || !t.Droppable() {
			return hands, fmt.Errorf("%w: unknown hand piece %q", ErrInvalidSFEN, c)
		}
		switch {
		case digits && count == 0:
			return hands, fmt.Errorf("%w: zero count for %q", ErrInvalidSFEN, c)
		case !digits:
			count = 1
		}
		owner := White
		if unicode.IsUpper(c) {
			owner = Black
		}
		hands[handIndex(owner)][t] += count
		if hands[handIndex(owner)][t] > maxHandCount {
			return hands, fmt.Errorf("%w: too many %s in hand", ErrInvalidSFEN, t)
		}
		count, digits = 0, false
	}
	if digits {
		return hands, fmt.Errorf("%w: dangling count in hands %q", ErrInvalidSFEN, text)
	}
	return hands, nil
}

// FormatSFEN writes s from black's point of view, including the move number.
func FormatSFEN(s *GameState) string {
	return fmt.Sprintf("%s %d", positionSFEN(s), s.MoveNumber)
}

func positionSFEN(s *GameState) string {
	board := s.BlackBoard()
	side := "b"
	if s.CurrentPlayer == White {
		side = "w"
	}

	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < BoardSize; f++ {
			p := board[r][f]
			if p == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.SFEN())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(side)
	sb.WriteByte(' ')

	hands := 0
	for _, owner := range [...]Player{Black, White} {
		hand := s.Hand(owner)
		for _, t := range sfenHandOrder {
			n := hand[t]
			if n == 0 {
				continue
			}
			if n > 1 {
				sb.WriteString(strconv.Itoa(n))
			}
			letter := sfenLetter(t)
			if owner == Black {
				letter = unicode.ToUpper(letter)
			}
			sb.WriteRune(letter)
			hands++
		}
	}
	if hands == 0 {
		sb.WriteByte('-')
	}
	return sb.String()
}
