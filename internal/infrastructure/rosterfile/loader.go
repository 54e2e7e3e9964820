// Package rosterfile loads a YAML roster into a fresh academic registry.
//
// A roster lists learners, courses and the enrollments between them:
//
//	learners:
//	  - name: Ada
//	courses:
//	  - title: Algorithms
//	enrollments:
//	  - learner: Ada
//	    course: Algorithms
//	    via: course   # optional, "learner" (default) or "course"
//	    grade: 90     # optional
//
// Learner names and course titles act as references inside the file, so
// they must be unique there.
package rosterfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alem-hub/gradebook/internal/domain/academic"
	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/pkg/logger"
)

var (
	// ErrRosterNotFound is returned when the roster file cannot be read.
	ErrRosterNotFound = errors.New("rosterfile: roster not found")

	// ErrInvalidRoster is returned when the roster is malformed or has
	// duplicate or dangling references.
	ErrInvalidRoster = errors.New("rosterfile: invalid roster")
)

// Enrollment sides accepted by the "via" key.
const (
	ViaLearner = "learner"
	ViaCourse  = "course"
)

type rosterDTO struct {
	Learners    []learnerDTO    `yaml:"learners"`
	Courses     []courseDTO     `yaml:"courses"`
	Enrollments []enrollmentDTO `yaml:"enrollments"`
}

type learnerDTO struct {
	Name string `yaml:"name"`
}

type courseDTO struct {
	Title string `yaml:"title"`
}

type enrollmentDTO struct {
	Learner string   `yaml:"learner"`
	Course  string   `yaml:"course"`
	Via     string   `yaml:"via"`
	Grade   *float64 `yaml:"grade"`
}

// Loader reads roster files.
type Loader struct {
	opts []academic.Option
}

// NewLoader creates a loader. The options configure every registry it builds.
func NewLoader(opts ...academic.Option) *Loader {
	return &Loader{opts: opts}
}

// LoadFile reads path and builds a registry from it.
func (l *Loader) LoadFile(ctx context.Context, path string) (*academic.Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRosterNotFound, path, err)
	}

	reg, err := l.Load(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.FromContext(ctx).Info("roster loaded",
		logger.Component("rosterfile"),
		logger.Operation("LoadFile"),
		logger.Path(path),
		logger.Count("learners", len(reg.Learners())),
		logger.Count("courses", len(reg.Courses())),
		logger.Count("enrollments", len(reg.Enrollments())),
	)
	return reg, nil
}

// Load builds a registry from raw YAML.
func (l *Loader) Load(ctx context.Context, data []byte) (*academic.Registry, error) {
	var dto rosterDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}
	if err := dto.validate(); err != nil {
		return nil, err
	}
	return l.toDomain(ctx, dto)
}

func (d rosterDTO) validate() error {
	names := make(map[string]bool, len(d.Learners))
	for i, ld := range d.Learners {
		name := strings.TrimSpace(ld.Name)
		if name == "" {
			return fmt.Errorf("%w: learners[%d]: name is required", ErrInvalidRoster, i)
		}
		if names[name] {
			return fmt.Errorf("%w: learners[%d]: duplicate learner %q", ErrInvalidRoster, i, name)
		}
		names[name] = true
	}

	titles := make(map[string]bool, len(d.Courses))
	for i, cd := range d.Courses {
		title := strings.TrimSpace(cd.Title)
		if title == "" {
			return fmt.Errorf("%w: courses[%d]: title is required", ErrInvalidRoster, i)
		}
		if titles[title] {
			return fmt.Errorf("%w: courses[%d]: duplicate course %q", ErrInvalidRoster, i, title)
		}
		titles[title] = true
	}

	for i, ed := range d.Enrollments {
		if !names[strings.TrimSpace(ed.Learner)] {
			return fmt.Errorf("%w: enrollments[%d]: unknown learner %q", ErrInvalidRoster, i, ed.Learner)
		}
		if !titles[strings.TrimSpace(ed.Course)] {
			return fmt.Errorf("%w: enrollments[%d]: unknown course %q", ErrInvalidRoster, i, ed.Course)
		}
		switch strings.ToLower(strings.TrimSpace(ed.Via)) {
		case "", ViaLearner, ViaCourse:
		default:
			return fmt.Errorf("%w: enrollments[%d]: via must be %q or %q", ErrInvalidRoster, i, ViaLearner, ViaCourse)
		}
	}
	return nil
}

func (l *Loader) toDomain(ctx context.Context, d rosterDTO) (*academic.Registry, error) {
	log := logger.FromContext(ctx).With(logger.Component("rosterfile"), logger.Operation("Load"))
	reg := academic.NewRegistry(l.opts...)

	learners := make(map[string]*academic.Learner, len(d.Learners))
	for _, ld := range d.Learners {
		name := strings.TrimSpace(ld.Name)
		learners[name] = reg.NewLearner(name)
	}

	courses := make(map[string]*academic.Course, len(d.Courses))
	for _, cd := range d.Courses {
		title := strings.TrimSpace(cd.Title)
		courses[title] = reg.NewCourse(title)
	}

	type pair struct{ learner, course string }
	seen := make(map[pair]int, len(d.Enrollments))

	for i, ed := range d.Enrollments {
		learner := learners[strings.TrimSpace(ed.Learner)]
		course := courses[strings.TrimSpace(ed.Course)]

		// Repeated pairs are legal enrollments but usually a roster mistake.
		p := pair{learner: learner.Name, course: course.Title}
		if first, ok := seen[p]; ok {
			log.Warn("learner enrolled in the same course again",
				logger.LearnerName(learner.Name),
				logger.CourseTitle(course.Title),
				logger.Int("entry", i),
				logger.Int("first_entry", first),
			)
		} else {
			seen[p] = i
		}

		var enr *academic.Enrollment
		var err error
		if strings.EqualFold(strings.TrimSpace(ed.Via), ViaCourse) {
			enr, err = course.EnrollStudent(learner)
		} else {
			enr, err = learner.Enroll(course)
		}
		if err != nil {
			return nil, entryError(i, err)
		}

		if ed.Grade != nil {
			if err := learner.SetGrade(enr, *ed.Grade); err != nil {
				return nil, entryError(i, err)
			}
		}

		log.Debug("enrollment created",
			logger.LearnerName(learner.Name),
			logger.CourseTitle(course.Title),
			logger.EnrollmentID(enr.ID),
		)
	}

	return reg, nil
}

// entryError attaches the roster entry index to a domain error. The result
// matches both ErrInvalidRoster and the domain error kind.
func entryError(i int, err error) error {
	return shared.WrapError("roster", "Load", ErrInvalidRoster, fmt.Sprintf("enrollments[%d]", i), err)
}
