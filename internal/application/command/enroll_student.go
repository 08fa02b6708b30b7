// Package command contains write operations (CQRS - Commands).
// Commands are responsible for changing the state of the roster.
package command

import (
	"context"
	"fmt"

	"github.com/campus-hub/student-records-hub/internal/domain/student"
	"github.com/campus-hub/student-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENROLL STUDENT COMMAND
// Builds a new student, records the initial scores, and inserts the student
// into the roster. The whole operation is all-or-nothing: a rejected score or
// a duplicate ID leaves the roster untouched.
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentCommand contains the data needed to enroll a student.
type EnrollStudentCommand struct {
	// Name is the student's display name.
	Name string

	// ID is the student's numeric identifier. Must be unique in the roster.
	ID int

	// Scores are the initial subject scores, in subject order.
	Scores []student.Score

	// CorrelationID ties log lines of one console operation together.
	CorrelationID string
}

// EnrollStudentResult contains the result of a successful enrollment.
type EnrollStudentResult struct {
	// StudentID is the ID of the enrolled student.
	StudentID int

	// ScoresRecorded is the number of initial scores recorded.
	ScoresRecorded int

	// RosterSize is the roster size after enrollment.
	RosterSize int
}

// EnrollStudentHandler handles the enrollment use case.
type EnrollStudentHandler struct {
	roster *student.Manager
	log    *logger.Logger
}

// NewEnrollStudentHandler creates a new EnrollStudentHandler.
func NewEnrollStudentHandler(roster *student.Manager, log *logger.Logger) *EnrollStudentHandler {
	return &EnrollStudentHandler{
		roster: roster,
		log:    log.With(logger.Component("command"), logger.Operation("enroll_student")),
	}
}

// Handle executes the enrollment. It surfaces student.ErrScoreOutOfRange and
// student.ErrDuplicateID to the caller; both are validation failures the
// console prints before continuing the menu loop.
func (h *EnrollStudentHandler) Handle(ctx context.Context, cmd EnrollStudentCommand) (*EnrollStudentResult, error) {
	log := h.log.WithCorrelationID(cmd.CorrelationID)

	st := student.NewStudent(cmd.Name, cmd.ID)
	for i, sc := range cmd.Scores {
		if err := st.AddScore(sc); err != nil {
			log.Warn("score rejected during enrollment",
				logger.StudentID(cmd.ID),
				logger.SubjectIndex(i),
				logger.ScoreValue(int(sc)),
				logger.Err(err),
			)
			return nil, fmt.Errorf("enroll student %d: score %d: %w", cmd.ID, i+1, err)
		}
	}

	if err := h.roster.Add(st); err != nil {
		log.Warn("enrollment rejected",
			logger.StudentID(cmd.ID),
			logger.Err(err),
		)
		return nil, fmt.Errorf("enroll student %d: %w", cmd.ID, err)
	}

	log.Info("student enrolled",
		logger.StudentID(st.ID),
		logger.StudentName(st.Name),
		logger.Int("scores_recorded", st.ScoreCount()),
		logger.RosterSize(h.roster.Count()),
	)

	return &EnrollStudentResult{
		StudentID:      st.ID,
		ScoresRecorded: st.ScoreCount(),
		RosterSize:     h.roster.Count(),
	}, nil
}
