package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alem-hub/gradebook/internal/application/report"
	"github.com/alem-hub/gradebook/internal/domain/academic"
	"github.com/alem-hub/gradebook/internal/infrastructure/rosterfile"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// Output formats for the report command.
const (
	formatText = "text"
	formatJSON = "json"
)

func newReportCmd(g *globals) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report <roster.yaml>",
		Short: "Load a roster and print grade and enrollment aggregates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
			}

			ctx := cmd.Context()
			loader := rosterfile.NewLoader(academic.WithLocation(g.cfg.App.Location))
			reg, err := loader.LoadFile(ctx, args[0])
			if err != nil {
				g.log.Error("failed to load roster", logger.Path(args[0]), logger.Err(err))
				return err
			}

			r := report.Build(ctx, reg)
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return writeText(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")
	return cmd
}

func writeJSON(w io.Writer, r *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeText(w io.Writer, r *report.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "LEARNER\tCOURSES\tGRADED\tAVERAGE")
	for _, l := range r.Learners {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\n", l.Name, l.CourseCount, l.GradedCount, l.AverageGrade)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "COURSE\tSTUDENTS")
	for _, c := range r.Courses {
		fmt.Fprintf(tw, "%s\t%d\n", c.Title, c.StudentCount)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "DATE (%s)\tENROLLMENTS\n", r.Timezone)
	for _, d := range r.EnrollmentsPerDay {
		fmt.Fprintf(tw, "%s\t%d\n", d.Date, d.Count)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "total: %d learners, %d courses, %d enrollments\n",
		r.TotalLearners, r.TotalCourses, r.TotalEnrollments)

	return tw.Flush()
}
