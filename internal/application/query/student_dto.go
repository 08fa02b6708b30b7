// Package query contains read operations following the CQRS pattern.
// Queries never modify state - they only read and return data.
// Each query is a self-contained use case with its own request/response types.
package query

import "github.com/campus-hub/student-records-hub/internal/domain/student"

// StudentDTO is the read-side representation of a student.
// It carries a defensive copy of the scores, so callers can never reach
// the roster's internal state through a query result.
type StudentDTO struct {
	// ID - the student's numeric identifier.
	ID int `json:"id"`

	// Name - the student's display name.
	Name string `json:"name"`

	// Scores - ordered subject scores (copy).
	Scores []student.Score `json:"scores"`

	// Average - derived mean score, 0 for an empty sequence.
	Average float64 `json:"average"`
}

// NewStudentDTO maps a domain student to its read-side representation.
func NewStudentDTO(st *student.Student) StudentDTO {
	return StudentDTO{
		ID:      st.ID,
		Name:    st.Name,
		Scores:  st.Scores(),
		Average: st.AverageScore(),
	}
}
