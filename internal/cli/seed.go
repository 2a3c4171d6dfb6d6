package cli

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tournamentExport/internal/models"
	"tournamentExport/internal/storage/postgres"
)

type bandsFile struct {
	Bands []models.Band `yaml:"bands" validate:"required,min=1,dive"`
}

func newSeedBandsCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed-bands",
		Short: "Insert bands from a YAML file, skipping existing names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bands, err := loadBandsFile(file)
			if err != nil {
				return err
			}

			db, err := postgres.InitDB(&a.cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			skipped, err := db.InsertBands(cmd.Context(), bands)
			if err != nil {
				return err
			}

			for _, name := range skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "skipping band %s: already exists\n", name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d bands inserted\n", len(bands)-len(skipped))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file listing the bands")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// loadBandsFile reads and validates a bands file. When no band sets a
// position, file order is used.
func loadBandsFile(path string) ([]models.Band, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bands file: %w", err)
	}

	var f bandsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bands file %s: %w", path, err)
	}

	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("invalid bands file %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(f.Bands))
	positioned := false
	for _, b := range f.Bands {
		if _, dup := seen[b.Name]; dup {
			return nil, fmt.Errorf("invalid bands file %s: duplicate band %q", path, b.Name)
		}
		seen[b.Name] = struct{}{}
		positioned = positioned || b.Position != 0
	}

	if !positioned {
		for i := range f.Bands {
			f.Bands[i].Position = i
		}
	}

	return f.Bands, nil
}
