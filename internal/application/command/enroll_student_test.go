package command

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/student-records-hub/internal/domain/student"
	"github.com/campus-hub/student-records-hub/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Output: io.Discard})
}

func TestEnrollStudentHandler_Handle(t *testing.T) {
	roster := student.NewManager()
	h := NewEnrollStudentHandler(roster, testLogger())

	res, err := h.Handle(context.Background(), EnrollStudentCommand{
		Name:          "Bhanu Pratap",
		ID:            101,
		Scores:        []student.Score{80, 90, 85},
		CorrelationID: "test-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 101, res.StudentID)
	assert.Equal(t, 3, res.ScoresRecorded)
	assert.Equal(t, 1, res.RosterSize)

	st, ok := roster.FindByID(101)
	require.True(t, ok)
	assert.Equal(t, []student.Score{80, 90, 85}, st.Scores())
}

func TestEnrollStudentHandler_DuplicateID(t *testing.T) {
	roster := student.NewManager()
	h := NewEnrollStudentHandler(roster, testLogger())
	ctx := context.Background()

	_, err := h.Handle(ctx, EnrollStudentCommand{Name: "A", ID: 1})
	require.NoError(t, err)

	_, err = h.Handle(ctx, EnrollStudentCommand{Name: "B", ID: 1})
	assert.ErrorIs(t, err, student.ErrDuplicateID)
	assert.Equal(t, 1, roster.Count())
}

func TestEnrollStudentHandler_InvalidScore(t *testing.T) {
	roster := student.NewManager()
	h := NewEnrollStudentHandler(roster, testLogger())

	_, err := h.Handle(context.Background(), EnrollStudentCommand{
		Name:   "A",
		ID:     1,
		Scores: []student.Score{80, 101},
	})
	assert.ErrorIs(t, err, student.ErrScoreOutOfRange)
	assert.Equal(t, 0, roster.Count(), "a rejected score must leave the roster untouched")
}

func TestRecordScoreHandler_Handle(t *testing.T) {
	roster := student.NewManager()
	enrollH := NewEnrollStudentHandler(roster, testLogger())
	h := NewRecordScoreHandler(roster, testLogger())
	ctx := context.Background()

	_, err := enrollH.Handle(ctx, EnrollStudentCommand{Name: "X", ID: 5, Scores: []student.Score{70}})
	require.NoError(t, err)

	res, err := h.Handle(ctx, RecordScoreCommand{StudentID: 5, Score: 80})
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, 2, res.ScoreCount)
	assert.InDelta(t, 75.0, res.Average, 1e-9)
}

func TestRecordScoreHandler_StudentNotFound(t *testing.T) {
	roster := student.NewManager()
	h := NewRecordScoreHandler(roster, testLogger())

	res, err := h.Handle(context.Background(), RecordScoreCommand{StudentID: 999, Score: 50})
	require.NoError(t, err, "a missing student is a signal, not an error")
	assert.False(t, res.Found)
}

func TestRecordScoreHandler_InvalidScore(t *testing.T) {
	roster := student.NewManager()
	enrollH := NewEnrollStudentHandler(roster, testLogger())
	h := NewRecordScoreHandler(roster, testLogger())
	ctx := context.Background()

	_, err := enrollH.Handle(ctx, EnrollStudentCommand{Name: "X", ID: 5, Scores: []student.Score{70}})
	require.NoError(t, err)

	_, err = h.Handle(ctx, RecordScoreCommand{StudentID: 5, Score: -1})
	assert.ErrorIs(t, err, student.ErrScoreOutOfRange)

	st, ok := roster.FindByID(5)
	require.True(t, ok)
	assert.Equal(t, []student.Score{70}, st.Scores(), "prior scores stay intact")
}
