package student

import "sort"

// ══════════════════════════════════════════════════════════════════════════════
// MANAGER (Roster)
// The Manager owns the mapping from ID to Student and is the sole authority
// on ID uniqueness. Membership is insert-only: there is no removal or update
// operation. Scores of an enrolled student can only be appended through the
// live reference returned by FindByID.
//
// The Manager is deliberately unsynchronized: all operations are driven
// sequentially from a single control loop.
// ══════════════════════════════════════════════════════════════════════════════

// Manager owns the collection of enrolled students, keyed by ID.
type Manager struct {
	students map[int]*Student
}

// NewManager creates an empty roster.
func NewManager() *Manager {
	return &Manager{
		students: make(map[int]*Student),
	}
}

// Add enrolls a student. Returns ErrDuplicateID when a student with the same
// ID is already present; the roster is unchanged on failure.
// Insertion order is not iteration order.
func (m *Manager) Add(st *Student) error {
	if _, exists := m.students[st.ID]; exists {
		return ErrDuplicateID
	}
	m.students[st.ID] = st
	return nil
}

// FindByID looks up a student by ID.
//
// The lookup snapshots the roster, sorts the snapshot by ID ascending, then
// binary-searches it. Rebuilding and re-sorting on every call makes this
// O(n log n) per lookup; the behavior is kept on purpose to match the
// reference system, not because it is a recommended pattern.
//
// The second return value is a not-found signal, distinct from an error:
// a missing ID is a normal outcome, not a failure.
func (m *Manager) FindByID(id int) (*Student, bool) {
	snapshot := make([]*Student, 0, len(m.students))
	for _, st := range m.students {
		snapshot = append(snapshot, st)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].ID < snapshot[j].ID
	})

	low, high := 0, len(snapshot)-1
	for low <= high {
		mid := (low + high) / 2
		switch {
		case snapshot[mid].ID == id:
			return snapshot[mid], true
		case snapshot[mid].ID < id:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return nil, false
}

// All returns every enrolled student in implementation-defined order
// (Go map iteration is randomized). Callers that need an empty indicator
// check the length themselves.
func (m *Manager) All() []*Student {
	out := make([]*Student, 0, len(m.students))
	for _, st := range m.students {
		out = append(out, st)
	}
	return out
}

// Count returns the number of enrolled students.
func (m *Manager) Count() int {
	return len(m.students)
}

// TopScorer returns the student with the highest score at the given subject
// index. Students with fewer scores than subjectIndex+1 are silently skipped.
// The comparison is strict greater-than, so on ties the first student
// encountered in map iteration order wins - which order that is, is
// deliberately unspecified.
//
// Returns ErrInvalidSubjectIndex for a negative index. A false second return
// means no enrolled student has a score at that index (including an empty
// roster) - a signal, not an error.
func (m *Manager) TopScorer(subjectIndex int) (*Student, bool, error) {
	if subjectIndex < 0 {
		return nil, false, ErrInvalidSubjectIndex
	}

	var top *Student
	topScore := Score(-1)

	for _, st := range m.students {
		sc, ok := st.ScoreAt(subjectIndex)
		if !ok {
			continue
		}
		if sc > topScore {
			topScore = sc
			top = st
		}
	}

	if top == nil {
		return nil, false, nil
	}
	return top, true, nil
}
