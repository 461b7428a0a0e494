package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/gen"
	"github.com/seedworks/taskgen/internal/logger"
	"github.com/seedworks/taskgen/internal/store"
	"github.com/seedworks/taskgen/internal/textgen"
	"github.com/seedworks/taskgen/internal/validate"
)

// maxReportedViolations bounds log noise when a run goes badly wrong.
const maxReportedViolations = 20

type GenerateCmd struct {
	Config string `help:"Path to YAML config file" type:"existingfile"`
	Output string `help:"SQLite output path, overrides the config file"`
	Seed   int64  `help:"Random seed, overrides the config file"`
	DryRun bool   `help:"Generate and validate without writing the database"`
}

func (c *GenerateCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	cfg, err := loadConfig(c.Config, c.Output, c.Seed)
	if err != nil {
		return err
	}

	var text textgen.Service = textgen.Fallback{}
	if cfg.Text.APIKey != "" {
		text = textgen.NewClient(cfg.Text, log)
	} else {
		log.Info().Msg("no API key configured, using template text")
	}

	pipe := gen.New(cfg, dist.DefaultLibrary(cfg.TasksPerUser), text, log)

	log.Info().
		Int64("seed", cfg.Seed).
		Time("reference_time", cfg.ReferenceTime).
		Int("months_of_history", cfg.MonthsOfHistory).
		Msg("generating dataset")

	ds, err := pipe.Run(ctx)
	if err != nil {
		return err
	}

	violations := validate.New(&cfg, pipe.Window(), log).Run(ds)
	if len(violations) > 0 {
		for i, v := range violations {
			if i >= maxReportedViolations {
				log.Error().Int("suppressed", len(violations)-i).Msg("further violations suppressed")
				break
			}
			log.Error().Str("violation", v.String()).Msg("consistency check failed")
		}
		return fmt.Errorf("dataset failed validation with %d violations", len(violations))
	}

	logCounts(log, ds.Counts())

	if c.DryRun {
		log.Info().Msg("dry run, skipping persistence")
		return nil
	}

	if dir := filepath.Dir(cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	st, err := store.Open(cfg.OutputPath, log)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Persist(ctx, ds); err != nil {
		return err
	}

	log.Info().Str("path", cfg.OutputPath).Msg("done")
	return nil
}

func logCounts(log zerolog.Logger, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	ev := log.Info()
	for _, name := range names {
		ev = ev.Int(name, counts[name])
	}
	ev.Msg("generated entities")
}
