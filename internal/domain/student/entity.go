// Package student contains the domain model for the student records hub.
// This is the core of the business logic - there are no external dependencies here.
package student

import (
	"errors"
	"fmt"
	"strings"
)

// ══════════════════════════════════════════════════════════════════════════════
// SCORE CONSTRAINTS
// ══════════════════════════════════════════════════════════════════════════════

const (
	// MinScore is the lowest score a student can receive.
	MinScore = 0

	// MaxScore is the highest score a student can receive.
	MaxScore = 100
)

// Score represents a single subject score in the range [MinScore, MaxScore].
type Score int

// IsValid reports whether the score is within the allowed range.
func (s Score) IsValid() bool {
	return s >= MinScore && s <= MaxScore
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrScoreOutOfRange - the score is outside [0, 100].
	ErrScoreOutOfRange = errors.New("score must be between 0 and 100")

	// ErrDuplicateID - a student with the same ID is already enrolled.
	ErrDuplicateID = errors.New("student with this id already exists")

	// ErrInvalidSubjectIndex - the subject index is negative.
	ErrInvalidSubjectIndex = errors.New("subject index cannot be negative")
)

// ══════════════════════════════════════════════════════════════════════════════
// PERSON (Identity)
// ══════════════════════════════════════════════════════════════════════════════

// Person is the identity record shared by everyone in the system.
// The ID is immutable after construction; uniqueness is enforced by the Manager,
// not here - two Persons may even share a name.
type Person struct {
	// Name - display name. Not required to be unique.
	Name string

	// ID - numeric identifier. Unique per Manager.
	ID int
}

// String returns the identity line used in console output and logs.
func (p Person) String() string {
	return fmt.Sprintf("Name: %s, ID: %d", p.Name, p.ID)
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student is an identity record composed with academic data: an ordered,
// append-only sequence of subject scores. The zero-based position of a score
// acts as an implicit subject identifier.
type Student struct {
	// Person - the student's identity.
	Person

	// scores - ordered subject scores. Only reachable through AddScore and
	// the defensive copy returned by Scores.
	scores []Score
}

// NewStudent creates a student with the given identity and no scores.
// The name is trimmed; beyond that there is no identity validation -
// ID uniqueness is the Manager's concern.
func NewStudent(name string, id int) *Student {
	return &Student{
		Person: Person{
			Name: strings.TrimSpace(name),
			ID:   id,
		},
	}
}

// AddScore appends a score to the end of the sequence.
// Returns ErrScoreOutOfRange for values outside [0, 100]; the existing
// sequence is left untouched on failure. There is no upper bound on the
// number of scores.
func (s *Student) AddScore(value Score) error {
	if !value.IsValid() {
		return fmt.Errorf("%w: got %d", ErrScoreOutOfRange, value)
	}
	s.scores = append(s.scores, value)
	return nil
}

// Scores returns a copy of the current score sequence. Mutating the returned
// slice never affects the student.
func (s *Student) Scores() []Score {
	out := make([]Score, len(s.scores))
	copy(out, s.scores)
	return out
}

// ScoreAt returns the score at the given subject index and whether it exists.
func (s *Student) ScoreAt(subjectIndex int) (Score, bool) {
	if subjectIndex < 0 || subjectIndex >= len(s.scores) {
		return 0, false
	}
	return s.scores[subjectIndex], true
}

// ScoreCount returns the number of recorded scores.
func (s *Student) ScoreCount() int {
	return len(s.scores)
}

// AverageScore returns the arithmetic mean of the scores.
// By policy it returns 0 for an empty sequence - callers must not treat
// that as a recorded grade.
func (s *Student) AverageScore() float64 {
	if len(s.scores) == 0 {
		return 0
	}

	sum := 0
	for _, sc := range s.scores {
		sum += int(sc)
	}
	return float64(sum) / float64(len(s.scores))
}

// String returns the identity line followed by scores and average.
// Formatting convenience only - nothing else depends on this shape.
func (s *Student) String() string {
	var sb strings.Builder
	sb.WriteString(s.Person.String())
	sb.WriteString("\nScores: [")
	for i, sc := range s.scores {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", sc)
	}
	fmt.Fprintf(&sb, "], Average: %.2f", s.AverageScore())
	return sb.String()
}
