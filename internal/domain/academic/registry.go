package academic

import (
	"time"

	"github.com/google/uuid"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTRY
// ══════════════════════════════════════════════════════════════════════════════

// Registry owns every learner, course and enrollment created through it.
// Its sequences are append-only and keep insertion order. The zero value is
// an empty registry using time.Now and time.Local.
type Registry struct {
	learners    []*Learner
	courses     []*Course
	enrollments []*Enrollment

	now func() time.Time
	loc *time.Location
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the clock used to stamp enrollments.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLocation sets the timezone used to decide which calendar day an
// enrollment falls on.
func WithLocation(loc *time.Location) Option {
	return func(r *Registry) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Location returns the timezone used for day bucketing.
func (r *Registry) Location() *time.Location {
	if r.loc == nil {
		return time.Local
	}
	return r.loc
}

func (r *Registry) clock() time.Time {
	if r.now == nil {
		return time.Now()
	}
	return r.now()
}

// NewLearner creates a learner and registers it.
func (r *Registry) NewLearner(name string) *Learner {
	l := &Learner{
		ID:       uuid.NewString(),
		Name:     name,
		registry: r,
		grades:   make(map[*Enrollment]float64),
	}
	r.learners = append(r.learners, l)
	return l
}

// NewCourse creates a course and registers it.
func (r *Registry) NewCourse(title string) *Course {
	c := &Course{
		ID:       uuid.NewString(),
		Title:    title,
		registry: r,
	}
	r.courses = append(r.courses, c)
	return c
}

// Learners returns every learner in creation order.
func (r *Registry) Learners() []*Learner {
	return append([]*Learner(nil), r.learners...)
}

// Courses returns every course in creation order.
func (r *Registry) Courses() []*Course {
	return append([]*Course(nil), r.courses...)
}

// Enrollments returns every enrollment in creation order.
func (r *Registry) Enrollments() []*Enrollment {
	return append([]*Enrollment(nil), r.enrollments...)
}

// EnrollmentsPerDay counts all enrollments ever created by the registry,
// grouped by the calendar day of their creation time in the registry location.
func (r *Registry) EnrollmentsPerDay() map[Date]int {
	counts := make(map[Date]int)
	for _, e := range r.enrollments {
		counts[DateOf(e.createdAt, r.Location())]++
	}
	return counts
}

// enroll is the single join constructor behind Learner.Enroll and
// Course.EnrollStudent. It validates both participants, then appends the
// new enrollment to the learner, the course and the registry.
func enroll(l *Learner, c *Course) (*Enrollment, error) {
	if l == nil || c == nil {
		return nil, shared.ErrInvalidMembers
	}
	if l.registry == nil || l.registry != c.registry {
		return nil, shared.ErrForeignRegistry
	}

	r := l.registry
	e := &Enrollment{
		ID:        uuid.NewString(),
		learner:   l,
		course:    c,
		createdAt: r.clock(),
	}

	l.enrollments = append(l.enrollments, e)
	c.enrollments = append(c.enrollments, e)
	r.enrollments = append(r.enrollments, e)
	return e, nil
}
