// Package presenter formats query results for console display.
// Presenters handle the conversion from read-side DTOs to the human-readable
// status and result lines the menu writes to standard output.
package presenter

import (
	"fmt"
	"strings"

	"github.com/campus-hub/student-records-hub/internal/application/query"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT CARD PRESENTER
// Formats student cards, the roster listing, and top-scorer results.
// The wording follows the reference console: "No students found.",
// "Student not found.", "Top student in subject N:".
// ══════════════════════════════════════════════════════════════════════════════

// StudentCardPresenter formats student data for the console.
type StudentCardPresenter struct{}

// NewStudentCardPresenter creates a new StudentCardPresenter.
func NewStudentCardPresenter() *StudentCardPresenter {
	return &StudentCardPresenter{}
}

// FormatStudent formats a single student card: the identity line followed by
// the score sequence and the computed average.
func (p *StudentCardPresenter) FormatStudent(dto query.StudentDTO) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s, ID: %d\n", dto.Name, dto.ID)
	sb.WriteString("Scores: [")
	for i, sc := range dto.Scores {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", sc)
	}
	fmt.Fprintf(&sb, "], Average: %.2f", dto.Average)
	return sb.String()
}

// FormatRoster formats the full roster listing. An empty roster yields the
// explicit empty indicator instead of silence.
func (p *StudentCardPresenter) FormatRoster(res *query.ListStudentsResult) string {
	if res.Total == 0 {
		return "No students found."
	}

	var sb strings.Builder
	sb.WriteString("All Students:")
	for _, dto := range res.Students {
		sb.WriteString("\n")
		sb.WriteString(p.FormatStudent(dto))
	}
	return sb.String()
}

// FormatSearchResult formats the outcome of an ID lookup.
func (p *StudentCardPresenter) FormatSearchResult(res *query.FindStudentResult) string {
	if !res.Found {
		return "Student not found."
	}
	return "Student found:\n" + p.FormatStudent(res.Student)
}

// FormatTopScorer formats the outcome of a top-scorer query. The subject is
// reported one-based, matching the reference console.
func (p *StudentCardPresenter) FormatTopScorer(res *query.TopScorerResult, subjectIndex int) string {
	if !res.Found {
		return "No top student found for that subject."
	}
	return fmt.Sprintf("Top student in subject %d:\n%s", subjectIndex+1, p.FormatStudent(res.Student))
}
