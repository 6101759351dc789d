package game

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidOutcome = errors.New("invalid outcome")

type Kind int8

const (
	ScoreKind Kind = iota // Zero value: a finite heuristic score
	WinKind
	LossKind
)

// Outcome is the value of a position: a win, a loss, or a finite heuristic score.
// Win ranks above every score and Loss below every score, so sentinels never mix with sums.
type Outcome struct {
	kind  Kind
	score int
}

var (
	Win  = Outcome{kind: WinKind}
	Loss = Outcome{kind: LossKind}
)

func Score(n int) Outcome {
	return Outcome{kind: ScoreKind, score: n}
}

func (o Outcome) Kind() Kind {
	return o.kind
}

func (o Outcome) IsWin() bool  { return o.kind == WinKind }
func (o Outcome) IsLoss() bool { return o.kind == LossKind }

// IsTerminal reports whether the outcome ends the game.
func (o Outcome) IsTerminal() bool {
	return o.kind != ScoreKind
}

// Value returns the heuristic score; ok is false for Win and Loss.
func (o Outcome) Value() (score int, ok bool) {
	return o.score, o.kind == ScoreKind
}

func (o Outcome) rank() int {
	switch o.kind {
	case LossKind:
		return 0
	case WinKind:
		return 2
	}
	return 1
}

// Compare returns -1, 0 or +1 when o is worse than, equal to or better than other.
func (o Outcome) Compare(other Outcome) int {
	if r, s := o.rank(), other.rank(); r != s {
		if r < s {
			return -1
		}
		return 1
	}
	if o.kind != ScoreKind || o.score == other.score {
		return 0
	}
	if o.score < other.score {
		return -1
	}
	return 1
}

func (o Outcome) Better(other Outcome) bool { return o.Compare(other) > 0 }
func (o Outcome) Worse(other Outcome) bool  { return o.Compare(other) < 0 }

func (o Outcome) String() string {
	switch o.kind {
	case WinKind:
		return "win"
	case LossKind:
		return "loss"
	}
	return strconv.Itoa(o.score)
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "win":
		*o = Win
	case "loss":
		*o = Loss
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
		}
		*o = Score(n)
	}
	return nil
}
