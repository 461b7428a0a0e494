package gen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/seedworks/taskgen/internal/config"
	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/textgen"
)

// Pipeline runs the entity generators in dependency order over a single
// seeded random stream. Generation is a pure function of (config,
// distribution library, seed): two runs with the same inputs produce the
// same dataset, except for text filled in by a non-deterministic Service.
type Pipeline struct {
	cfg  config.Config
	lib  *dist.Library
	text textgen.Service
	log  zerolog.Logger
}

// New builds a pipeline. The text service is injected so tests and
// keyless runs can use the deterministic fallback.
func New(cfg config.Config, lib *dist.Library, text textgen.Service, log zerolog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, lib: lib, text: text, log: log}
}

// run carries the mutable state of one generation pass. The RNG and the
// lookup indexes are owned exclusively by the pass; nothing is global.
type run struct {
	cfg  config.Config
	lib  *dist.Library
	rng  *rand.Rand
	win  Window
	text textgen.Service
	log  zerolog.Logger
	ds   *Dataset

	usersByID         map[uuid.UUID]*model.User
	teamMembers       map[uuid.UUID][]*model.User
	teamsOfUser       map[uuid.UUID]map[uuid.UUID]bool
	projectMembers    map[uuid.UUID][]*model.User
	projectsByID      map[uuid.UUID]*model.Project
	projectsByTeam    map[uuid.UUID][]*model.Project
	userProjects      map[uuid.UUID][]*model.Project
	sectionsByProject map[uuid.UUID][]*model.Section
	tasksByProject    map[uuid.UUID][]*model.Task

	// openTasks tracks assigned incomplete tasks per user for the
	// workload cap.
	openTasks map[uuid.UUID]int
}

// Run executes every stage and returns the finished dataset. Stages only
// read already-completed upstream state, so the pass is strictly
// sequential.
func (p *Pipeline) Run(ctx context.Context) (*Dataset, error) {
	now := p.cfg.ReferenceTime
	win := Window{Start: now.AddDate(0, -p.cfg.MonthsOfHistory, 0), Now: now}

	r := &run{
		cfg:  p.cfg,
		lib:  p.lib,
		rng:  rand.New(rand.NewSource(p.cfg.Seed)),
		win:  win,
		text: p.text,
		log:  p.log,
		ds:   &Dataset{},

		usersByID:         make(map[uuid.UUID]*model.User),
		teamMembers:       make(map[uuid.UUID][]*model.User),
		teamsOfUser:       make(map[uuid.UUID]map[uuid.UUID]bool),
		projectMembers:    make(map[uuid.UUID][]*model.User),
		projectsByID:      make(map[uuid.UUID]*model.Project),
		projectsByTeam:    make(map[uuid.UUID][]*model.Project),
		userProjects:      make(map[uuid.UUID][]*model.Project),
		sectionsByProject: make(map[uuid.UUID][]*model.Section),
		tasksByProject:    make(map[uuid.UUID][]*model.Task),
		openTasks:         make(map[uuid.UUID]int),
	}

	stages := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"organization", r.generateOrganization},
		{"users", r.generateUsers},
		{"teams", r.generateTeams},
		{"projects", r.generateProjects},
		{"tasks", r.generateTasks},
		{"comments", r.generateComments},
		{"stories", r.generateStories},
		{"custom_fields", r.generateCustomFields},
		{"tags", r.generateTags},
		{"dependencies", r.generateDependencies},
		{"attachments", r.generateAttachments},
		{"finalize", r.finalize},
	}

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation cancelled before %s stage: %w", stage.name, err)
		}
		if err := stage.fn(ctx); err != nil {
			return nil, fmt.Errorf("%s stage failed: %w", stage.name, err)
		}
	}

	return r.ds, nil
}

// Window returns the simulation clock the pipeline will run with.
func (p *Pipeline) Window() Window {
	now := p.cfg.ReferenceTime
	return Window{Start: now.AddDate(0, -p.cfg.MonthsOfHistory, 0), Now: now}
}
