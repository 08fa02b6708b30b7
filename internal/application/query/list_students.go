package query

import (
	"context"

	"github.com/campus-hub/student-records-hub/internal/domain/student"
	"github.com/campus-hub/student-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST STUDENTS QUERY
// Returns the full roster in implementation-defined order. An empty roster
// yields Total == 0; the console turns that into an explicit
// "No students found." line rather than printing nothing.
// ══════════════════════════════════════════════════════════════════════════════

// ListStudentsQuery contains the listing parameters.
type ListStudentsQuery struct {
	// CorrelationID ties log lines of one console operation together.
	CorrelationID string
}

// ListStudentsResult contains the full roster view.
type ListStudentsResult struct {
	// Students - every enrolled student, map-iteration order.
	Students []StudentDTO

	// Total - the roster size.
	Total int
}

// ListStudentsHandler handles the listing use case.
type ListStudentsHandler struct {
	roster *student.Manager
	log    *logger.Logger
}

// NewListStudentsHandler creates a new ListStudentsHandler.
func NewListStudentsHandler(roster *student.Manager, log *logger.Logger) *ListStudentsHandler {
	return &ListStudentsHandler{
		roster: roster,
		log:    log.With(logger.Component("query"), logger.Operation("list_students")),
	}
}

// Handle executes the listing.
func (h *ListStudentsHandler) Handle(ctx context.Context, q ListStudentsQuery) (*ListStudentsResult, error) {
	log := h.log.WithCorrelationID(q.CorrelationID)

	all := h.roster.All()
	dtos := make([]StudentDTO, 0, len(all))
	for _, st := range all {
		dtos = append(dtos, NewStudentDTO(st))
	}

	log.Debug("roster listed", logger.RosterSize(len(dtos)))
	return &ListStudentsResult{
		Students: dtos,
		Total:    len(dtos),
	}, nil
}
