package command

import (
	"context"
	"fmt"

	"github.com/campus-hub/student-records-hub/internal/domain/student"
	"github.com/campus-hub/student-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD SCORE COMMAND
// Appends a score to an already enrolled student. This is the sanctioned
// append path: the roster itself has no update operation, so the handler
// looks up the live student reference and appends through it.
// ══════════════════════════════════════════════════════════════════════════════

// RecordScoreCommand contains the data needed to record a score.
type RecordScoreCommand struct {
	// StudentID identifies the enrolled student.
	StudentID int

	// Score is the value to append.
	Score student.Score

	// CorrelationID ties log lines of one console operation together.
	CorrelationID string
}

// RecordScoreResult contains the result of recording a score.
type RecordScoreResult struct {
	// Found reports whether the student exists. A missing student is a
	// signal, not an error.
	Found bool

	// ScoreCount is the score count after the append.
	ScoreCount int

	// Average is the recomputed average after the append.
	Average float64
}

// RecordScoreHandler handles the score recording use case.
type RecordScoreHandler struct {
	roster *student.Manager
	log    *logger.Logger
}

// NewRecordScoreHandler creates a new RecordScoreHandler.
func NewRecordScoreHandler(roster *student.Manager, log *logger.Logger) *RecordScoreHandler {
	return &RecordScoreHandler{
		roster: roster,
		log:    log.With(logger.Component("command"), logger.Operation("record_score")),
	}
}

// Handle executes the score recording. Returns student.ErrScoreOutOfRange for
// values outside [0, 100]; the student's prior scores stay intact.
func (h *RecordScoreHandler) Handle(ctx context.Context, cmd RecordScoreCommand) (*RecordScoreResult, error) {
	log := h.log.WithCorrelationID(cmd.CorrelationID)

	st, ok := h.roster.FindByID(cmd.StudentID)
	if !ok {
		log.Debug("student not found", logger.StudentID(cmd.StudentID))
		return &RecordScoreResult{Found: false}, nil
	}

	if err := st.AddScore(cmd.Score); err != nil {
		log.Warn("score rejected",
			logger.StudentID(cmd.StudentID),
			logger.ScoreValue(int(cmd.Score)),
			logger.Err(err),
		)
		return nil, fmt.Errorf("record score for student %d: %w", cmd.StudentID, err)
	}

	log.Info("score recorded",
		logger.StudentID(cmd.StudentID),
		logger.ScoreValue(int(cmd.Score)),
		logger.Int("score_count", st.ScoreCount()),
	)

	return &RecordScoreResult{
		Found:      true,
		ScoreCount: st.ScoreCount(),
		Average:    st.AverageScore(),
	}, nil
}
