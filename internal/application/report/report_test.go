package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/academic"
	"github.com/alem-hub/gradebook/pkg/logger"
)

func TestBuild(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 9, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 3, 9, 0, 0, 0, time.UTC),
	}
	i := 0
	clock := func() time.Time {
		ts := times[i]
		i++
		return ts
	}

	reg := academic.NewRegistry(academic.WithClock(clock), academic.WithLocation(time.UTC))
	ada := reg.NewLearner("Ada")
	alan := reg.NewLearner("Alan")
	algo := reg.NewCourse("Algorithms")
	logic := reg.NewCourse("Logic")
	reg.NewCourse("Compilers")

	e1, err := ada.Enroll(algo)
	require.NoError(t, err)
	e2, err := logic.EnrollStudent(ada)
	require.NoError(t, err)
	_, err = alan.Enroll(algo)
	require.NoError(t, err)
	require.NoError(t, ada.SetGrade(e1, 90))
	require.NoError(t, ada.SetGrade(e2, 80))

	var buf bytes.Buffer
	ctx := logger.WithContext(context.Background(), logger.New(logger.Options{Output: &buf, Level: logger.LevelDebug, Format: logger.FormatText}))

	r := Build(ctx, reg)

	assert.Equal(t, "UTC", r.Timezone)
	assert.Equal(t, 2, r.TotalLearners)
	assert.Equal(t, 3, r.TotalCourses)
	assert.Equal(t, 3, r.TotalEnrollments)

	require.Len(t, r.Learners, 2)
	assert.Equal(t, "Ada", r.Learners[0].Name)
	assert.Equal(t, []string{"Algorithms", "Logic"}, r.Learners[0].Courses)
	assert.Equal(t, 2, r.Learners[0].CourseCount)
	assert.Equal(t, 2, r.Learners[0].GradedCount)
	assert.Equal(t, 85.0, r.Learners[0].AverageGrade)
	assert.Equal(t, 0.0, r.Learners[1].AverageGrade)

	require.Len(t, r.Courses, 3)
	assert.Equal(t, []string{"Ada", "Alan"}, r.Courses[0].Students)
	assert.Equal(t, 2, r.Courses[0].StudentCount)
	assert.Equal(t, 0, r.Courses[2].StudentCount)
	assert.Empty(t, r.Courses[2].Students)

	assert.Equal(t, []DayEntryDTO{
		{Date: "2024-09-02", Count: 1},
		{Date: "2024-09-03", Count: 2},
	}, r.EnrollmentsPerDay)

	assert.Contains(t, buf.String(), "report built")
	assert.Contains(t, buf.String(), "operation=Build")
	assert.Contains(t, buf.String(), "learner summarised average_grade=85")
}

func TestBuild_Empty(t *testing.T) {
	r := Build(context.Background(), academic.NewRegistry())

	assert.Zero(t, r.TotalEnrollments)
	assert.NotNil(t, r.Learners)
	assert.NotNil(t, r.Courses)
	assert.Empty(t, r.EnrollmentsPerDay)
}
