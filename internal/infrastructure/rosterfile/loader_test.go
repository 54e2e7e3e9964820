package rosterfile

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/academic"
	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/pkg/logger"
)

const sampleRoster = `
learners:
  - name: Ada
  - name: Alan
courses:
  - title: Algorithms
  - title: Logic
enrollments:
  - learner: Ada
    course: Algorithms
    grade: 90
  - learner: Ada
    course: Logic
    via: course
    grade: 80
  - learner: Alan
    course: Algorithms
`

func TestLoad_BuildsRegistry(t *testing.T) {
	at := time.Date(2024, 9, 2, 12, 0, 0, 0, time.UTC)
	l := NewLoader(academic.WithClock(func() time.Time { return at }), academic.WithLocation(time.UTC))

	reg, err := l.Load(context.Background(), []byte(sampleRoster))
	require.NoError(t, err)

	learners := reg.Learners()
	require.Len(t, learners, 2)
	ada, alan := learners[0], learners[1]
	assert.Equal(t, "Ada", ada.Name)
	assert.Equal(t, 2, ada.CourseCount())
	assert.Equal(t, 85.0, ada.AggregateAverageGrade())
	assert.Equal(t, 0.0, alan.AggregateAverageGrade())

	courses := reg.Courses()
	require.Len(t, courses, 2)
	assert.Equal(t, []*academic.Learner{ada, alan}, courses[0].Students())
	assert.Equal(t, 1, courses[1].StudentCount())

	assert.Equal(t, map[academic.Date]int{{Year: 2024, Month: time.September, Day: 2}: 3}, reg.EnrollmentsPerDay())
}

func TestLoad_Empty(t *testing.T) {
	reg, err := NewLoader().Load(context.Background(), []byte(""))
	require.NoError(t, err)
	assert.Empty(t, reg.Learners())
	assert.Empty(t, reg.Enrollments())
}

func TestLoad_InvalidRosters(t *testing.T) {
	cases := map[string]string{
		"malformed":         "learners: [",
		"missing name":      "learners:\n  - name: ''\n",
		"duplicate learner": "learners:\n  - name: Ada\n  - name: Ada\n",
		"missing title":     "courses:\n  - title: ' '\n",
		"duplicate course":  "courses:\n  - title: Logic\n  - title: Logic\n",
		"unknown learner":   "courses:\n  - title: Logic\nenrollments:\n  - learner: Bob\n    course: Logic\n",
		"unknown course":    "learners:\n  - name: Ada\nenrollments:\n  - learner: Ada\n    course: Art\n",
		"bad via":           "learners:\n  - name: Ada\ncourses:\n  - title: Logic\nenrollments:\n  - learner: Ada\n    course: Logic\n    via: admin\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewLoader().Load(context.Background(), []byte(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRoster), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRoster), 0o644))

	reg, err := NewLoader().LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, reg.Enrollments(), 3)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := NewLoader().LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrRosterNotFound)
}

func TestLoadFile_InvalidMentionsPath(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("learners:\n  - name: Ada\n  - name: Ada\n"), 0o644))

	_, err := NewLoader().LoadFile(context.Background(), path)
	require.ErrorIs(t, err, ErrInvalidRoster)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_RepeatedPairWarns(t *testing.T) {
	doc := "learners:\n  - name: Ada\ncourses:\n  - title: Logic\nenrollments:\n" +
		"  - learner: Ada\n    course: Logic\n" +
		"  - learner: Ada\n    course: Logic\n    via: course\n"

	var buf bytes.Buffer
	log := logger.New(logger.Options{Output: &buf, Level: logger.LevelWarn, Format: logger.FormatText})
	ctx := logger.WithContext(context.Background(), log)

	reg, err := NewLoader().Load(ctx, []byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Learners()[0].CourseCount())
	assert.Contains(t, buf.String(), "WARN  learner enrolled in the same course again")
	assert.Contains(t, buf.String(), "first_entry=0")
	assert.Contains(t, buf.String(), "entry=1")
	assert.Contains(t, buf.String(), "operation=Load")
}

func TestEntryError_KeepsDomainKind(t *testing.T) {
	err := entryError(3, shared.ErrForeignEnrollment)

	assert.ErrorIs(t, err, ErrInvalidRoster)
	assert.ErrorIs(t, err, shared.ErrForeignEnrollment)
	assert.True(t, shared.IsValueError(err))
	assert.Equal(t, "roster.Load: enrollments[3]: learner.SetGrade: enrollment does not belong to this learner", err.Error())
}
