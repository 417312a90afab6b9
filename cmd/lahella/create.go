package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"lahella/internal/logger"
	"lahella/internal/service"
)

var (
	createDryRun  bool
	createCopyURL bool
)

var createCmd = &cobra.Command{
	Use:   "create <course.yaml>",
	Short: "Create a new course listing from a YAML document",
	Long: `Validates the course document, uploads its image when one is configured,
and creates the listing under the configured group.

With --dry-run the exact create payload is printed as JSON instead and
nothing touches the network, so a document can be checked before
'lahella login' has ever run.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "print the create payload instead of submitting it")
	createCmd.Flags().BoolVar(&createCopyURL, "copy-url", false, "copy the new listing's portal URL to the clipboard")
}

func runCreate(cmd *cobra.Command, args []string) error {
	st, err := loadSettings()
	if err != nil {
		return err
	}
	log := logger.NewLogger("create", st.Verbose)

	doc, err := resolveCourse(args[0], st)
	if err != nil {
		return err
	}
	applyBaseURL(st, doc)

	services, err := buildServices(st, doc.Auth.Group, !createDryRun, log)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	created, err := services.Courses.Create(ctx, doc, service.CourseOptions{DryRun: createDryRun})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if createDryRun {
		return printJSON(out, created)
	}

	viewURL := services.Courses.ViewURL(created.Key)
	fmt.Fprintf(out, "Created listing %s\n%s\n", created.Key, viewURL)

	if createCopyURL {
		if err := clipboard.WriteAll(viewURL); err != nil {
			log.Warn().Err(err).Msg("could not reach the system clipboard")
		} else {
			fmt.Fprintln(out, "View URL copied to the clipboard.")
		}
	}

	return nil
}
