package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/campus-hub/student-records-hub/internal/application/command"
	"github.com/campus-hub/student-records-hub/internal/application/query"
	"github.com/campus-hub/student-records-hub/internal/domain/student"
	"github.com/campus-hub/student-records-hub/internal/interface/console/presenter"
	"github.com/campus-hub/student-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MENU LOOP
// Drives the whole system sequentially from a single control loop:
//
//	1. Display All Students
//	2. Search Student by ID
//	3. Get Top Student in Subject
//	4. Add New Student
//	5. Exit
//
// Validation failures (score out of range, duplicate ID, negative subject
// index) are printed and the loop continues; none are fatal. The process
// exits normally on option 5.
// ══════════════════════════════════════════════════════════════════════════════

// Menu choice constants.
const (
	choiceListAll = iota + 1
	choiceSearchByID
	choiceTopScorer
	choiceAddStudent
	choiceExit
)

// Menu is the interactive console front-end.
type Menu struct {
	prompter *Prompter
	out      io.Writer
	enroll   *command.EnrollStudentHandler
	find     *query.FindStudentHandler
	list     *query.ListStudentsHandler
	top      *query.TopScorerHandler
	cards    *presenter.StudentCardPresenter
	log      *logger.Logger
}

// NewMenu creates the menu with its application-layer dependencies.
func NewMenu(
	prompter *Prompter,
	out io.Writer,
	enroll *command.EnrollStudentHandler,
	find *query.FindStudentHandler,
	list *query.ListStudentsHandler,
	top *query.TopScorerHandler,
	log *logger.Logger,
) *Menu {
	return &Menu{
		prompter: prompter,
		out:      out,
		enroll:   enroll,
		find:     find,
		list:     list,
		top:      top,
		cards:    presenter.NewStudentCardPresenter(),
		log:      log.With(logger.Component("console")),
	}
}

// Run executes the menu loop until the user picks Exit or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, err := m.prompter.Int("Enter your choice: ")
		if err != nil {
			if abandoned := m.handleInputError(err); abandoned {
				continue
			}
			return nil // stdin closed, treat as exit
		}

		cid := uuid.NewString()
		m.log.Debug("menu choice", logger.MenuChoice(choice), logger.String(logger.CorrelationIDKey, cid))

		switch choice {
		case choiceListAll:
			m.runListAll(ctx, cid)
		case choiceSearchByID:
			m.runSearch(ctx, cid)
		case choiceTopScorer:
			m.runTopScorer(ctx, cid)
		case choiceAddStudent:
			m.runAddStudent(ctx, cid)
		case choiceExit:
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Menu ---")
	fmt.Fprintln(m.out, "1. Display All Students")
	fmt.Fprintln(m.out, "2. Search Student by ID")
	fmt.Fprintln(m.out, "3. Get Top Student in Subject")
	fmt.Fprintln(m.out, "4. Add New Student")
	fmt.Fprintln(m.out, "5. Exit")
}

// handleInputError reports whether the loop should continue after a prompt
// failure. Only exhausted attempts are recoverable; anything else means the
// input stream is gone.
func (m *Menu) handleInputError(err error) bool {
	if errors.Is(err, ErrTooManyInvalidInputs) {
		fmt.Fprintln(m.out, "Operation abandoned after repeated invalid input.")
		return true
	}
	m.log.Debug("input stream ended", logger.Err(err))
	return false
}

func (m *Menu) runListAll(ctx context.Context, cid string) {
	res, err := m.list.Handle(ctx, query.ListStudentsQuery{CorrelationID: cid})
	if err != nil {
		fmt.Fprintln(m.out, err.Error())
		return
	}
	fmt.Fprintln(m.out, m.cards.FormatRoster(res))
}

func (m *Menu) runSearch(ctx context.Context, cid string) {
	id, err := m.prompter.Int("Enter Student ID to search: ")
	if err != nil {
		m.handleInputError(err)
		return
	}

	res, err := m.find.Handle(ctx, query.FindStudentQuery{ID: id, CorrelationID: cid})
	if err != nil {
		fmt.Fprintln(m.out, err.Error())
		return
	}
	fmt.Fprintln(m.out, m.cards.FormatSearchResult(res))
}

func (m *Menu) runTopScorer(ctx context.Context, cid string) {
	idx, err := m.prompter.Int("Enter subject index (0 for first subject, 1 for second, etc.): ")
	if err != nil {
		m.handleInputError(err)
		return
	}

	res, err := m.top.Handle(ctx, query.TopScorerQuery{SubjectIndex: idx, CorrelationID: cid})
	if err != nil {
		// Negative index is a validation failure, printed like the rest.
		fmt.Fprintln(m.out, err.Error())
		return
	}
	fmt.Fprintln(m.out, m.cards.FormatTopScorer(res, idx))
}

func (m *Menu) runAddStudent(ctx context.Context, cid string) {
	name, err := m.prompter.Line("Enter student name: ")
	if err != nil {
		m.handleInputError(err)
		return
	}

	id, err := m.prompter.Int("Enter student ID: ")
	if err != nil {
		m.handleInputError(err)
		return
	}

	count, err := m.prompter.Int("How many scores to add? ")
	if err != nil {
		m.handleInputError(err)
		return
	}

	scores := make([]student.Score, 0, max(count, 0))
	for i := 0; i < count; i++ {
		sc, err := m.prompter.Int(fmt.Sprintf("Enter score %d: ", i+1))
		if err != nil {
			m.handleInputError(err)
			return
		}
		scores = append(scores, student.Score(sc))
	}

	_, err = m.enroll.Handle(ctx, command.EnrollStudentCommand{
		Name:          name,
		ID:            id,
		Scores:        scores,
		CorrelationID: cid,
	})
	if err != nil {
		fmt.Fprintln(m.out, err.Error())
		return
	}
	fmt.Fprintln(m.out, "Student added successfully.")
}
