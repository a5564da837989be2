package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"alfredoptarigan/career-mentor/internal/config"
	"alfredoptarigan/career-mentor/internal/models"
	"alfredoptarigan/career-mentor/internal/pkg/logger"
	"alfredoptarigan/career-mentor/internal/repositories"
	"alfredoptarigan/career-mentor/internal/services"
)

var (
	degree         string
	year           string
	skills         string
	careerInterest string
	learningStyle  string
	save           bool
	byForm         bool
)

var rootCmd = &cobra.Command{
	Use:          "mentorctl",
	Short:        "Operate the AI Career Mentor store and roadmap generator",
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the career_forms, career_roadmaps and status_checks tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer config.CloseDatabase(db)
		fmt.Fprintln(cmd.OutOrStdout(), "migration completed")
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a roadmap for a student profile and print it as JSON",
	RunE:  runGenerate,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored roadmap (or, with --form, every roadmap of a form)",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List stored status checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(db *gorm.DB) error {
			checks, err := repositories.NewStatusCheckRepository(db).List(cmd.Context(), repositories.MaxStatusChecks)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), checks)
		})
	},
}

func init() {
	generateCmd.Flags().StringVar(&degree, "degree", "", "Degree or field of study")
	generateCmd.Flags().StringVar(&year, "year", "", "Academic year")
	generateCmd.Flags().StringVar(&skills, "skills", "", "Current skills")
	generateCmd.Flags().StringVar(&careerInterest, "career-interest", "", "Target career")
	generateCmd.Flags().StringVar(&learningStyle, "learning-style", "", "Learning preference")
	generateCmd.Flags().BoolVar(&save, "save", false, "Persist the form and roadmap to the database")

	showCmd.Flags().BoolVar(&byForm, "form", false, "Treat the argument as a form id")

	rootCmd.AddCommand(migrateCmd, generateCmd, showCmd, statusCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func profileRequest() (models.CareerFormRequest, error) {
	req := models.CareerFormRequest{
		Degree:         degree,
		Year:           year,
		Skills:         skills,
		CareerInterest: careerInterest,
		LearningStyle:  learningStyle,
	}
	missing := missingFlags(req)
	if len(missing) > 0 {
		return req, fmt.Errorf("missing required flags: %v", missing)
	}
	return req, nil
}

func missingFlags(req models.CareerFormRequest) []string {
	var missing []string
	for _, f := range []struct {
		flag  string
		value string
	}{
		{"--degree", req.Degree},
		{"--year", req.Year},
		{"--skills", req.Skills},
		{"--career-interest", req.CareerInterest},
		{"--learning-style", req.LearningStyle},
	} {
		if f.value == "" {
			missing = append(missing, f.flag)
		}
	}
	return missing
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := profileRequest()
	if err != nil {
		return err
	}

	cfg, _ := config.Load()
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := cmd.Context()
	gateway, err := services.NewGatewayFromConfig(ctx, cfg.LLM)
	if err != nil {
		return err
	}
	generator := services.NewRoadmapGenerator(gateway, services.GeneratorOptions{
		Timeout:      cfg.LLM.Timeout,
		StrictSchema: cfg.Generator.StrictSchema,
	}, log)

	form := models.NewCareerForm(req)

	if !save {
		return writeJSON(cmd.OutOrStdout(), generator.Generate(ctx, form))
	}

	return withDatabase(func(db *gorm.DB) error {
		if err := repositories.NewCareerFormRepository(db).Create(ctx, form); err != nil {
			return err
		}
		roadmap := models.NewRoadmap(form.ID, generator.Generate(ctx, form))
		if err := repositories.NewRoadmapRepository(db).Create(ctx, roadmap); err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), models.NewRoadmapResponse(roadmap))
	})
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[0], err)
	}

	return withDatabase(func(db *gorm.DB) error {
		roadmapRepo := repositories.NewRoadmapRepository(db)

		if !byForm {
			roadmap, err := roadmapRepo.FindByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), models.NewRoadmapResponse(roadmap))
		}

		form, err := repositories.NewCareerFormRepository(db).FindByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		roadmaps, err := roadmapRepo.FindByFormID(cmd.Context(), id)
		if err != nil {
			return err
		}
		out := struct {
			Form     *models.CareerForm       `json:"form"`
			Roadmaps []models.RoadmapResponse `json:"roadmaps"`
		}{Form: form, Roadmaps: make([]models.RoadmapResponse, 0, len(roadmaps))}
		for i := range roadmaps {
			out.Roadmaps = append(out.Roadmaps, models.NewRoadmapResponse(&roadmaps[i]))
		}
		return writeJSON(cmd.OutOrStdout(), out)
	})
}

// openDatabase keeps SQL logging off so stdout stays valid JSON.
func openDatabase() (*gorm.DB, error) {
	cfg, _ := config.Load()
	cfg.Database.LogSQL = false
	return config.InitDatabase(cfg)
}

func withDatabase(fn func(db *gorm.DB) error) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer config.CloseDatabase(db)
	return fn(db)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
