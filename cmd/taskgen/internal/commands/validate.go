package commands

import (
	"context"
	"fmt"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/gen"
	"github.com/seedworks/taskgen/internal/logger"
	"github.com/seedworks/taskgen/internal/textgen"
	"github.com/seedworks/taskgen/internal/validate"
)

type ValidateCmd struct {
	Config string `help:"Path to YAML config file" type:"existingfile"`
	Seed   int64  `help:"Random seed, overrides the config file"`
}

// Run generates a dataset with template text and runs the full check
// suite against it. Nothing is persisted; the command exists to vet a
// configuration before a real run.
func (c *ValidateCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	cfg, err := loadConfig(c.Config, "", c.Seed)
	if err != nil {
		return err
	}

	pipe := gen.New(cfg, dist.DefaultLibrary(cfg.TasksPerUser), textgen.Fallback{}, log)

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
	log.Info().Int64("seed", cfg.Seed).Msg("dataset is consistent")
	return nil
}
