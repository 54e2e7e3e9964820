package academic

import (
	"time"

	"github.com/alem-hub/gradebook/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENROLLMENT
// ══════════════════════════════════════════════════════════════════════════════

// Enrollment links one learner to one course. Its participants and creation
// time are fixed at construction.
type Enrollment struct {
	// ID - unique identifier (UUID string).
	ID string

	learner   *Learner
	course    *Course
	createdAt time.Time
}

// Learner returns the enrolled learner.
func (e *Enrollment) Learner() *Learner {
	return e.learner
}

// Course returns the course.
func (e *Enrollment) Course() *Course {
	return e.course
}

// EnrollmentDate returns the time the enrollment was created.
func (e *Enrollment) EnrollmentDate() time.Time {
	return e.createdAt
}

// ══════════════════════════════════════════════════════════════════════════════
// DATE
// ══════════════════════════════════════════════════════════════════════════════

// Date is a calendar day. It is comparable and used as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day t falls on in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	d := timeutil.StartOfDay(t, loc)
	return Date{Year: d.Year(), Month: d.Month(), Day: d.Day()}
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return timeutil.FormatDateStr(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC), time.UTC)
}
