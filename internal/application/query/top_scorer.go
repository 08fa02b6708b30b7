package query

import (
	"context"
	"fmt"

	"github.com/campus-hub/student-records-hub/internal/domain/student"
	"github.com/campus-hub/student-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// TOP SCORER QUERY
// Finds the student with the highest score at a given subject index.
// A negative index is a validation error (student.ErrInvalidSubjectIndex);
// "nobody has a score at that index" is a not-found signal in the result.
// Tie-breaking is deliberately unspecified.
// ══════════════════════════════════════════════════════════════════════════════

// TopScorerQuery contains the query parameters.
type TopScorerQuery struct {
	// SubjectIndex is the zero-based position into the score sequences.
	SubjectIndex int

	// CorrelationID ties log lines of one console operation together.
	CorrelationID string
}

// TopScorerResult contains the query outcome.
type TopScorerResult struct {
	// Found reports whether any student has a score at the index.
	Found bool

	// Student holds the top scorer when Found is true.
	Student StudentDTO

	// Score is the winning score when Found is true.
	Score student.Score
}

// TopScorerHandler handles the top-scorer use case.
type TopScorerHandler struct {
	roster *student.Manager
	log    *logger.Logger
}

// NewTopScorerHandler creates a new TopScorerHandler.
func NewTopScorerHandler(roster *student.Manager, log *logger.Logger) *TopScorerHandler {
	return &TopScorerHandler{
		roster: roster,
		log:    log.With(logger.Component("query"), logger.Operation("top_scorer")),
	}
}

// Handle executes the query.
func (h *TopScorerHandler) Handle(ctx context.Context, q TopScorerQuery) (*TopScorerResult, error) {
	log := h.log.WithCorrelationID(q.CorrelationID)

	top, ok, err := h.roster.TopScorer(q.SubjectIndex)
	if err != nil {
		log.Warn("top scorer query rejected",
			logger.SubjectIndex(q.SubjectIndex),
			logger.Err(err),
		)
		return nil, fmt.Errorf("top scorer for subject %d: %w", q.SubjectIndex, err)
	}
	if !ok {
		log.Debug("no student has a score at this index", logger.SubjectIndex(q.SubjectIndex))
		return &TopScorerResult{Found: false}, nil
	}

	score, _ := top.ScoreAt(q.SubjectIndex)
	log.Debug("top scorer found",
		logger.SubjectIndex(q.SubjectIndex),
		logger.StudentID(top.ID),
		logger.ScoreValue(int(score)),
	)

	return &TopScorerResult{
		Found:   true,
		Student: NewStudentDTO(top),
		Score:   score,
	}, nil
}
