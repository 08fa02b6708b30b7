package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudent_AddScore_ValidRange(t *testing.T) {
	st := NewStudent("Aliya", 1)

	for _, sc := range []Score{0, 1, 50, 99, 100} {
		err := st.AddScore(sc)
		require.NoError(t, err)

		scores := st.Scores()
		assert.Equal(t, sc, scores[len(scores)-1], "added score must be the last element")
	}
	assert.Equal(t, 5, st.ScoreCount())
}

func TestStudent_AddScore_OutOfRange(t *testing.T) {
	st := NewStudent("Aliya", 1)
	require.NoError(t, st.AddScore(80))

	for _, sc := range []Score{-1, -100, 101, 1000} {
		err := st.AddScore(sc)
		assert.ErrorIs(t, err, ErrScoreOutOfRange)
	}

	// A rejected value must leave the prior sequence intact.
	assert.Equal(t, []Score{80}, st.Scores())
}

func TestStudent_Scores_DefensiveCopy(t *testing.T) {
	st := NewStudent("Dias", 2)
	require.NoError(t, st.AddScore(70))
	require.NoError(t, st.AddScore(80))

	scores := st.Scores()
	scores[0] = 0

	assert.Equal(t, []Score{70, 80}, st.Scores(), "mutating the copy must not affect the student")
}

func TestStudent_AverageScore(t *testing.T) {
	st := NewStudent("Dias", 2)
	assert.Equal(t, 0.0, st.AverageScore(), "empty sequence averages to 0 by policy")

	for _, sc := range []Score{80, 90, 85} {
		require.NoError(t, st.AddScore(sc))
	}
	assert.InDelta(t, 85.0, st.AverageScore(), 1e-9)
}

func TestStudent_AverageScore_NonIntegerMean(t *testing.T) {
	st := NewStudent("Dias", 2)
	require.NoError(t, st.AddScore(70))
	require.NoError(t, st.AddScore(80))
	require.NoError(t, st.AddScore(81))

	assert.InDelta(t, 77.0, st.AverageScore(), 1e-9)

	st2 := NewStudent("Aruzhan", 3)
	require.NoError(t, st2.AddScore(70))
	require.NoError(t, st2.AddScore(81))
	assert.InDelta(t, 75.5, st2.AverageScore(), 1e-9, "mean uses floating-point division")
}

func TestStudent_ScoreAt(t *testing.T) {
	st := NewStudent("Aruzhan", 3)
	require.NoError(t, st.AddScore(60))
	require.NoError(t, st.AddScore(90))

	sc, ok := st.ScoreAt(1)
	assert.True(t, ok)
	assert.Equal(t, Score(90), sc)

	_, ok = st.ScoreAt(2)
	assert.False(t, ok, "index beyond the sequence is a miss, not an error")

	_, ok = st.ScoreAt(-1)
	assert.False(t, ok)
}

func TestStudent_NewStudent_TrimsName(t *testing.T) {
	st := NewStudent("  Aliya  ", 7)
	assert.Equal(t, "Aliya", st.Name)
	assert.Equal(t, 7, st.ID)
	assert.Empty(t, st.Scores())
}

func TestStudent_String(t *testing.T) {
	st := NewStudent("X", 5)
	require.NoError(t, st.AddScore(70))
	require.NoError(t, st.AddScore(80))

	assert.Equal(t, "Name: X, ID: 5\nScores: [70, 80], Average: 75.00", st.String())
}
