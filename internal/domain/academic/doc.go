// Package academic contains the domain model of the gradebook: learners,
// courses and the enrollments joining them.
//
// The package defines:
//
//   - Registry: the owner of every entity, replacing process-wide lists
//   - Learner, Course: independent top-level entities
//   - Enrollment: the join record between one learner and one course
//   - Date: the calendar day used by the per-day aggregate
//
// # Ownership
//
// Learners and courses are created by a Registry and remember it. An
// enrollment can only join a learner and a course of the same registry, and
// it is always registered on both sides plus in the registry in one call:
//
//	reg := academic.NewRegistry()
//	ada := reg.NewLearner("Ada")
//	algo := reg.NewCourse("Algorithms")
//
//	enr, err := ada.Enroll(algo) // or algo.EnrollStudent(ada)
//	if err != nil {
//	    return err
//	}
//	_ = ada.SetGrade(enr, 90)
//
// # Aggregates
//
// Aggregates are computed on demand by walking the collections:
// Learner.AggregateAverageGrade, Course.StudentCount and
// Registry.EnrollmentsPerDay. Nothing is cached.
//
// # Errors
//
// Missing arguments fail with shared.ErrType, ownership violations with
// shared.ErrValue. Validation always happens before any mutation.
//
// The package is not safe for concurrent use.
package academic
