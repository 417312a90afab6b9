package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lahella/internal/activity"
	"lahella/internal/logger"
	"lahella/models"
)

var (
	pullID     string
	pullJSON   bool
	pullYAML   bool
	pullOutput string
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download listings from the portal",
	Long: `Lists every listing of the configured group; with --id a single listing
is fetched instead.

The default output is a summary table. --json prints the raw portal
records; --yaml converts them back into the editable document schema, so
a pulled listing can be adjusted and re-submitted with 'lahella update'.`,
	Args: cobra.NoArgs,
	RunE: runPull,
}

func init() {
	pullCmd.Flags().StringVar(&pullID, "id", "", "fetch a single listing by key")
	pullCmd.Flags().BoolVar(&pullJSON, "json", false, "output raw portal records as JSON")
	pullCmd.Flags().BoolVar(&pullYAML, "yaml", false, "output editable documents as YAML")
	pullCmd.Flags().StringVarP(&pullOutput, "output", "o", "", "write the export to a file instead of stdout")
	pullCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

func runPull(cmd *cobra.Command, args []string) error {
	if pullOutput != "" && !pullJSON && !pullYAML {
		return errors.New("--output requires --json or --yaml")
	}

	st, err := loadSettings()
	if err != nil {
		return err
	}
	log := logger.NewLogger("pull", st.Verbose)

	doc, err := resolveAuth(st)
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

	var listings []models.Activity
	if pullID != "" {
		listing, err := services.Courses.Fetch(ctx, pullID)
		if err != nil {
			return err
		}
		listings = []models.Activity{listing}
	} else {
		listings, err = services.Courses.All(ctx)
		if err != nil {
			return err
		}
	}

	log.Info().Int("listings", len(listings)).Msg("downloaded listings")

	if pullOutput == "" {
		return renderPull(cmd.OutOrStdout(), listings)
	}

	var buf bytes.Buffer
	if err := renderPull(&buf, listings); err != nil {
		return err
	}
	if err := os.WriteFile(pullOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	log.Info().Str("file", pullOutput).Int("listings", len(listings)).Msg("wrote export")

	return nil
}

// renderPull writes the listings in the selected output format. A --id
// export is a single record, everything else a list.
func renderPull(w io.Writer, listings []models.Activity) error {
	switch {
	case pullJSON:
		if pullID != "" && len(listings) == 1 {
			return printJSON(w, listings[0])
		}
		return printJSON(w, listings)
	case pullYAML:
		docs := make([]*models.Document, 0, len(listings))
		for _, listing := range listings {
			docs = append(docs, activity.FromActivity(listing))
		}
		if pullID != "" && len(docs) == 1 {
			return printYAML(w, docs[0])
		}
		return printYAML(w, docs)
	default:
		printListingTable(w, listings)
		return nil
	}
}

func printListingTable(w io.Writer, listings []models.Activity) {
	fmt.Fprintf(w, "Found %d listings:\n\n", len(listings))

	now := time.Now()
	for i, listing := range listings {
		name := listing.Traits.Translations["fi"].Name
		if name == "" {
			name = "Untitled"
		}
		fmt.Fprintf(w, "  %d. [%s] %s (%s)\n", i+1, listing.Key, name, activity.StatusOf(listing, now))
	}
}
