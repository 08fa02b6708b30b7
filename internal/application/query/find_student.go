package query

import (
	"context"

	"github.com/campus-hub/student-records-hub/internal/domain/student"
	"github.com/campus-hub/student-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// FIND STUDENT QUERY
// Looks a student up by ID through the roster's snapshot-sort-binary-search
// path. The "not found" outcome is part of the result, never an error.
// ══════════════════════════════════════════════════════════════════════════════

// FindStudentQuery contains the lookup parameters.
type FindStudentQuery struct {
	// ID is the student ID to look up.
	ID int

	// CorrelationID ties log lines of one console operation together.
	CorrelationID string
}

// FindStudentResult contains the lookup outcome.
type FindStudentResult struct {
	// Found reports whether a student with the given ID exists.
	Found bool

	// Student holds the match when Found is true.
	Student StudentDTO
}

// FindStudentHandler handles the lookup use case.
type FindStudentHandler struct {
	roster *student.Manager
	log    *logger.Logger
}

// NewFindStudentHandler creates a new FindStudentHandler.
func NewFindStudentHandler(roster *student.Manager, log *logger.Logger) *FindStudentHandler {
	return &FindStudentHandler{
		roster: roster,
		log:    log.With(logger.Component("query"), logger.Operation("find_student")),
	}
}

// Handle executes the lookup.
func (h *FindStudentHandler) Handle(ctx context.Context, q FindStudentQuery) (*FindStudentResult, error) {
	log := h.log.WithCorrelationID(q.CorrelationID)

	st, ok := h.roster.FindByID(q.ID)
	if !ok {
		log.Debug("student not found", logger.StudentID(q.ID))
		return &FindStudentResult{Found: false}, nil
	}

	log.Debug("student found", logger.StudentID(st.ID), logger.StudentName(st.Name))
	return &FindStudentResult{
		Found:   true,
		Student: NewStudentDTO(st),
	}, nil
}
