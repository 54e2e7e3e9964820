package academic

import "github.com/alem-hub/gradebook/internal/domain/shared"

// ══════════════════════════════════════════════════════════════════════════════
// LEARNER
// ══════════════════════════════════════════════════════════════════════════════

// Learner is a person enrolled in zero or more courses.
// Create learners with Registry.NewLearner.
type Learner struct {
	// ID - unique identifier (UUID string).
	ID string

	// Name - display name, not required to be unique.
	Name string

	registry    *Registry
	enrollments []*Enrollment

	// grades only ever holds enrollments that are also in enrollments.
	grades map[*Enrollment]float64
}

// Enroll enrolls the learner in course.
// Returns ErrNilCourse if course is nil and ErrForeignRegistry if the course
// was created by another registry.
func (l *Learner) Enroll(course *Course) (*Enrollment, error) {
	if course == nil {
		return nil, shared.ErrNilCourse
	}
	return enroll(l, course)
}

// Enrollments returns a copy of the learner's enrollments in insertion order.
func (l *Learner) Enrollments() []*Enrollment {
	return append([]*Enrollment(nil), l.enrollments...)
}

// Courses returns the course of each enrollment, in enrollment order.
func (l *Learner) Courses() []*Course {
	courses := make([]*Course, 0, len(l.enrollments))
	for _, e := range l.enrollments {
		courses = append(courses, e.course)
	}
	return courses
}

// CourseCount returns the number of enrollments.
func (l *Learner) CourseCount() int {
	return len(l.enrollments)
}

// SetGrade records grade for one of the learner's own enrollments,
// replacing any earlier grade.
func (l *Learner) SetGrade(enrollment *Enrollment, grade float64) error {
	if enrollment == nil {
		return shared.ErrNilEnrollment
	}
	if enrollment.learner != l {
		return shared.ErrForeignEnrollment
	}
	if l.grades == nil {
		l.grades = make(map[*Enrollment]float64)
	}
	l.grades[enrollment] = grade
	return nil
}

// Grade returns the recorded grade for enrollment, if any.
func (l *Learner) Grade(enrollment *Enrollment) (float64, bool) {
	g, ok := l.grades[enrollment]
	return g, ok
}

// GradedCount returns how many enrollments have a grade.
func (l *Learner) GradedCount() int {
	return len(l.grades)
}

// AggregateAverageGrade returns the arithmetic mean of the recorded grades,
// or 0 when nothing is graded. Ungraded enrollments are not counted.
func (l *Learner) AggregateAverageGrade() float64 {
	if len(l.grades) == 0 {
		return 0.0
	}

	// Sum in enrollment order so the result does not depend on map iteration.
	var sum float64
	var n int
	for _, e := range l.enrollments {
		if g, ok := l.grades[e]; ok {
			sum += g
			n++
		}
	}
	return sum / float64(n)
}
