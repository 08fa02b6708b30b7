package query

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

func testRoster(t *testing.T) *student.Manager {
	t.Helper()
	roster := student.NewManager()

	seed := []struct {
		name   string
		id     int
		scores []student.Score
	}{
		{"Bhanu Pratap", 101, []student.Score{80, 90, 85}},
		{"Harsh", 102, []student.Score{95, 88, 92}},
		{"Badal", 103, []student.Score{78, 85, 80}},
	}
	for _, s := range seed {
		st := student.NewStudent(s.name, s.id)
		for _, sc := range s.scores {
			require.NoError(t, st.AddScore(sc))
		}
		require.NoError(t, roster.Add(st))
	}
	return roster
}

func TestFindStudentHandler_Found(t *testing.T) {
	h := NewFindStudentHandler(testRoster(t), testLogger())

	res, err := h.Handle(context.Background(), FindStudentQuery{ID: 101})
	require.NoError(t, err)

	require.True(t, res.Found)
	assert.Equal(t, "Bhanu Pratap", res.Student.Name)
	assert.Equal(t, []student.Score{80, 90, 85}, res.Student.Scores)
	assert.InDelta(t, 85.0, res.Student.Average, 1e-9)
}

func TestFindStudentHandler_NotFound(t *testing.T) {
	h := NewFindStudentHandler(testRoster(t), testLogger())

	res, err := h.Handle(context.Background(), FindStudentQuery{ID: 999})
	require.NoError(t, err, "a missing ID is a signal, not an error")
	assert.False(t, res.Found)
}

func TestFindStudentHandler_DTOIsACopy(t *testing.T) {
	roster := testRoster(t)
	h := NewFindStudentHandler(roster, testLogger())

	res, err := h.Handle(context.Background(), FindStudentQuery{ID: 102})
	require.NoError(t, err)
	require.True(t, res.Found)

	res.Student.Scores[0] = 0

	st, ok := roster.FindByID(102)
	require.True(t, ok)
	assert.Equal(t, []student.Score{95, 88, 92}, st.Scores(), "query results must not expose roster state")
}

func TestListStudentsHandler(t *testing.T) {
	h := NewListStudentsHandler(testRoster(t), testLogger())

	res, err := h.Handle(context.Background(), ListStudentsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Students, 3)

	ids := map[int]bool{}
	for _, dto := range res.Students {
		ids[dto.ID] = true
	}
	assert.Equal(t, map[int]bool{101: true, 102: true, 103: true}, ids)
}

func TestListStudentsHandler_Empty(t *testing.T) {
	h := NewListStudentsHandler(student.NewManager(), testLogger())

	res, err := h.Handle(context.Background(), ListStudentsQuery{})
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Students)
}

func TestTopScorerHandler_Found(t *testing.T) {
	h := NewTopScorerHandler(testRoster(t), testLogger())

	res, err := h.Handle(context.Background(), TopScorerQuery{SubjectIndex: 0})
	require.NoError(t, err)

	require.True(t, res.Found)
	assert.Equal(t, 102, res.Student.ID, "Harsh has the highest first-subject score")
	assert.Equal(t, student.Score(95), res.Score)
}

func TestTopScorerHandler_NegativeIndex(t *testing.T) {
	h := NewTopScorerHandler(testRoster(t), testLogger())

	_, err := h.Handle(context.Background(), TopScorerQuery{SubjectIndex: -1})
	assert.ErrorIs(t, err, student.ErrInvalidSubjectIndex)
}

func TestTopScorerHandler_IndexBeyondAllSequences(t *testing.T) {
	h := NewTopScorerHandler(testRoster(t), testLogger())

	res, err := h.Handle(context.Background(), TopScorerQuery{SubjectIndex: 5})
	require.NoError(t, err)
	assert.False(t, res.Found)
}
