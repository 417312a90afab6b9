package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lahella/internal/logger"
	"lahella/internal/service"
)

var updateDryRun bool

var updateCmd = &cobra.Command{
	Use:   "update <course.yaml>",
	Short: "Update an existing listing to match a YAML document",
	Long: `Fetches the listing addressed by course.key, diffs it against the
document, and replaces it on the portal when they differ. Server-owned
identifiers (channel ids, contact ids, the bound photo) are preserved so
the portal keeps treating the venues as the same ones.

With --dry-run the change list and the exact update payload are printed
and nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "print the changes and the update payload instead of submitting them")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	st, err := loadSettings()
	if err != nil {
		return err
	}
	log := logger.NewLogger("update", st.Verbose)

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

	out := cmd.OutOrStdout()

	updated, changes, err := services.Courses.Update(ctx, doc, service.CourseOptions{DryRun: updateDryRun})
	if errors.Is(err, service.ErrUpToDate) {
		fmt.Fprintln(out, "Listing already matches the server copy, nothing to update.")
		return nil
	}
	if err != nil {
		return err
	}

	printChanges(out, changes)

	if updateDryRun {
		return printJSON(out, updated)
	}

	fmt.Fprintf(out, "Updated listing %s\n%s\n", doc.Course.Key, services.Courses.ViewURL(doc.Course.Key))

	return nil
}
