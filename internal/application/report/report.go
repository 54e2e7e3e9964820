// Package report contains the read side of the gradebook: it walks a
// registry and turns its aggregates into plain DTOs for rendering.
// Building a report never modifies the registry.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/alem-hub/gradebook/internal/domain/academic"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// DTOs
// ══════════════════════════════════════════════════════════════════════════════

// LearnerEntryDTO summarises one learner.
type LearnerEntryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Courses - course titles in enrollment order.
	Courses []string `json:"courses"`

	CourseCount  int     `json:"course_count"`
	GradedCount  int     `json:"graded_count"`
	AverageGrade float64 `json:"average_grade"`
}

// CourseEntryDTO summarises one course.
type CourseEntryDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// Students - learner names in enrollment order.
	Students []string `json:"students"`

	StudentCount int `json:"student_count"`
}

// DayEntryDTO is one row of the enrollments-per-day aggregate.
type DayEntryDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Report is a snapshot of every aggregate a registry can produce.
type Report struct {
	Timezone string `json:"timezone"`

	Learners []LearnerEntryDTO `json:"learners"`
	Courses  []CourseEntryDTO  `json:"courses"`

	// EnrollmentsPerDay - sorted by date, oldest first.
	EnrollmentsPerDay []DayEntryDTO `json:"enrollments_per_day"`

	TotalLearners    int `json:"total_learners"`
	TotalCourses     int `json:"total_courses"`
	TotalEnrollments int `json:"total_enrollments"`
}

// ══════════════════════════════════════════════════════════════════════════════
// BUILD
// ══════════════════════════════════════════════════════════════════════════════

// Build walks reg and produces a Report. Learners and courses keep registry
// order. The logger is taken from ctx.
func Build(ctx context.Context, reg *academic.Registry) *Report {
	start := time.Now()
	log := logger.FromContext(ctx).With(logger.Component("report"), logger.Operation("Build"))

	learners := reg.Learners()
	courses := reg.Courses()

	r := &Report{
		Timezone:          reg.Location().String(),
		Learners:          make([]LearnerEntryDTO, 0, len(learners)),
		Courses:           make([]CourseEntryDTO, 0, len(courses)),
		EnrollmentsPerDay: perDay(reg.EnrollmentsPerDay()),
		TotalLearners:     len(learners),
		TotalCourses:      len(courses),
		TotalEnrollments:  len(reg.Enrollments()),
	}

	for _, l := range learners {
		titles := make([]string, 0, l.CourseCount())
		for _, c := range l.Courses() {
			titles = append(titles, c.Title)
		}
		avg := l.AggregateAverageGrade()
		r.Learners = append(r.Learners, LearnerEntryDTO{
			ID:           l.ID,
			Name:         l.Name,
			Courses:      titles,
			CourseCount:  l.CourseCount(),
			GradedCount:  l.GradedCount(),
			AverageGrade: avg,
		})
		log.Debug("learner summarised",
			logger.LearnerName(l.Name),
			logger.Count("courses", l.CourseCount()),
			logger.AverageGrade(avg),
		)
	}

	for _, c := range courses {
		names := make([]string, 0, c.StudentCount())
		for _, s := range c.Students() {
			names = append(names, s.Name)
		}
		r.Courses = append(r.Courses, CourseEntryDTO{
			ID:           c.ID,
			Title:        c.Title,
			Students:     names,
			StudentCount: c.StudentCount(),
		})
	}

	log.Info("report built",
		logger.Count("learners", r.TotalLearners),
		logger.Count("courses", r.TotalCourses),
		logger.Count("enrollments", r.TotalEnrollments),
		logger.Count("days", len(r.EnrollmentsPerDay)),
		logger.Latency(time.Since(start)),
	)

	return r
}

func perDay(counts map[academic.Date]int) []DayEntryDTO {
	days := make([]academic.Date, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]DayEntryDTO, 0, len(days))
	for _, d := range days {
		out = append(out, DayEntryDTO{Date: d.String(), Count: counts[d]})
	}
	return out
}
