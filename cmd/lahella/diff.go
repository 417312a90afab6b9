package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lahella/internal/logger"
)

var diffCmd = &cobra.Command{
	Use:   "diff <course.yaml>",
	Short: "Show what an update would change on the portal",
	Long: `Fetches the listing addressed by course.key and prints the field-level
differences the document would introduce. Read-only: nothing is written
and no image is uploaded.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	st, err := loadSettings()
	if err != nil {
		return err
	}
	log := logger.NewLogger("diff", st.Verbose)

	doc, err := resolveCourse(args[0], st)
	if err != nil {
		return err
	}
	applyBaseURL(st, doc)

	services, err := buildServices(st, doc.Auth.Group, true, log)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	_, changes, err := services.Courses.Changes(ctx, doc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(changes) == 0 {
		fmt.Fprintln(out, "No changes.")
		return nil
	}
	printChanges(out, changes)

	return nil
}
