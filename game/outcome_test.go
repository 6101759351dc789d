package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcomeCompare(t *testing.T) {
	t.Run("win beats any score", func(t *testing.T) {
		require.True(t, Win.Better(Score(NumLines)))
		require.True(t, Win.Better(Score(1<<30)), "Sentinels should not be numeric")
	})

	t.Run("loss is worse than any score", func(t *testing.T) {
		require.True(t, Loss.Worse(Score(0)))
		require.True(t, Loss.Worse(Score(-1<<30)))
	})

	t.Run("scores compare numerically", func(t *testing.T) {
		require.Equal(t, -1, Score(3).Compare(Score(4)))
		require.Equal(t, 1, Score(4).Compare(Score(3)))
		require.Equal(t, 0, Score(4).Compare(Score(4)))
	})

	t.Run("sentinels equal themselves", func(t *testing.T) {
		require.Equal(t, 0, Win.Compare(Win))
		require.Equal(t, 0, Loss.Compare(Loss))
		require.True(t, Win.Better(Loss))
	})

	t.Run("zero value is a zero score", func(t *testing.T) {
		var zero Outcome
		require.Equal(t, Score(0), zero)
		require.False(t, zero.IsTerminal())
	})
}

func TestOutcomeText(t *testing.T) {
	payload := struct {
		Outcomes []Outcome `json:"outcomes"`
	}{Outcomes: []Outcome{Win, Loss, Score(42)}}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.JSONEq(t, `{"outcomes":["win","loss","42"]}`, string(data))

	var decoded struct {
		Outcomes []Outcome `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, payload.Outcomes, decoded.Outcomes)

	var bad Outcome
	require.ErrorIs(t, bad.UnmarshalText([]byte("draw")), ErrInvalidOutcome)
}
