// Package student is the domain core of the student records hub.
//
// It defines:
//
//   - Entities: Person (identity), Student (identity + ordered subject scores)
//   - The Manager: an insert-only roster keyed by student ID, the sole
//     authority on ID uniqueness
//   - Domain errors: ErrScoreOutOfRange, ErrDuplicateID, ErrInvalidSubjectIndex
//
// Invariants enforced here:
//
//   - Every recorded score is within [0, 100]; a rejected value never
//     mutates the existing sequence
//   - Score sequences leave the package only as defensive copies
//   - A student's average is derived, never stored; it is 0 for an empty
//     sequence by policy
//
// Lookup failures ("no such ID", "no score at that subject index") are
// reported as ok-bool signals, never as errors. The package has no external
// dependencies and no synchronization: all access is single-threaded by
// design.
package student
