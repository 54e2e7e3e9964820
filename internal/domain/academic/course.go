package academic

import "github.com/alem-hub/gradebook/internal/domain/shared"

// ══════════════════════════════════════════════════════════════════════════════
// COURSE
// ══════════════════════════════════════════════════════════════════════════════

// Course is an offering learners enroll in.
// Create courses with Registry.NewCourse.
type Course struct {
	// ID - unique identifier (UUID string).
	ID string

	// Title - course title, not required to be unique.
	Title string

	registry    *Registry
	enrollments []*Enrollment
}

// EnrollStudent enrolls learner in the course. It is the course-side
// counterpart of Learner.Enroll and keeps both sides in sync the same way.
func (c *Course) EnrollStudent(learner *Learner) (*Enrollment, error) {
	if learner == nil {
		return nil, shared.ErrNilLearner
	}
	return enroll(learner, c)
}

// Enrollments returns a copy of the course's enrollments in insertion order.
func (c *Course) Enrollments() []*Enrollment {
	return append([]*Enrollment(nil), c.enrollments...)
}

// Students returns the learner of each enrollment, in enrollment order.
func (c *Course) Students() []*Learner {
	students := make([]*Learner, 0, len(c.enrollments))
	for _, e := range c.enrollments {
		students = append(students, e.learner)
	}
	return students
}

// StudentCount returns the number of enrollments.
func (c *Course) StudentCount() int {
	return len(c.enrollments)
}
