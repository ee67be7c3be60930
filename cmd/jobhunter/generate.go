package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmorales/jobhunter/internal/config"
	"github.com/jmorales/jobhunter/internal/store"
	"github.com/jmorales/jobhunter/internal/types"
)

var (
	generateProfileID   string
	generatePostingID   string
	generateProfileFile string
	generatePostingFile string
	generateOut         string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one tailored resume PDF",
	Long: `Run the full pipeline once and write the PDF to disk.

Inputs come either from the database (--profile and --posting ids, requires
DATABASE_URL) or from local JSON files (--profile-file and --posting-file).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateProfileID, "profile", "", "Profile id to tailor")
	generateCmd.Flags().StringVar(&generatePostingID, "posting", "", "Posting id to target")
	generateCmd.Flags().StringVar(&generateProfileFile, "profile-file", "", "Path to a candidate profile JSON file")
	generateCmd.Flags().StringVar(&generatePostingFile, "posting-file", "", "Path to a job posting JSON file")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output PDF path (default: artifact filename)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var mem *store.Memory
	profileID, postingID := generateProfileID, generatePostingID

	if generateProfileFile != "" || generatePostingFile != "" {
		if generateProfileFile == "" || generatePostingFile == "" {
			return fmt.Errorf("--profile-file and --posting-file must be used together")
		}
		mem = store.NewMemory()

		var profile types.CandidateProfile
		if err := readJSON(generateProfileFile, &profile); err != nil {
			return err
		}
		if profile.Version == 0 {
			profile.Version = 1
		}
		mem.AddProfile(&profile)
		profileID = profile.ID

		var posting types.JobPosting
		if err := readJSON(generatePostingFile, &posting); err != nil {
			return err
		}
		mem.AddPosting(&posting)
		postingID = posting.ID
	}

	if profileID == "" || postingID == "" {
		return fmt.Errorf("a profile and a posting are required (ids or files)")
	}

	a, err := buildApp(cfg, mem)
	if err != nil {
		return err
	}
	defer a.Close()

	artifact, err := a.cache.Generate(context.Background(), profileID, postingID)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	out := generateOut
	if out == "" {
		out = artifact.Filename
	}
	if err := os.WriteFile(out, artifact.PDF, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", out, len(artifact.PDF))
	if artifact.Degraded {
		fmt.Println("Note: model selection degraded, the resume uses original profile content:")
		for _, warning := range artifact.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
