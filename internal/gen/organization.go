package gen

import (
	"context"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/refdata"
)

// generateOrganization creates the single root organization. It predates
// the activity window: a mature company 24-36 months old with an employee
// count drawn between the configured bounds.
func (r *run) generateOrganization(context.Context) error {
	company := pick(r.rng, refdata.Companies)

	mean := float64(r.cfg.MinUsers+r.cfg.MaxUsers) / 2
	sd := float64(r.cfg.MaxUsers-r.cfg.MinUsers) / 6
	if sd == 0 {
		sd = 1
	}
	size := dist.Normal{
		Mean:   mean,
		StdDev: sd,
		Min:    float64(r.cfg.MinUsers),
		Max:    float64(r.cfg.MaxUsers),
	}.SampleInt(r.rng)

	monthsAgo := 24 + r.rng.Intn(13)
	created := r.win.Now.AddDate(0, -monthsAgo, 0)

	r.ds.Org = &model.Organization{
		OrgID:         newID(r.rng),
		Name:          company.Name,
		Domain:        company.Domain,
		Industry:      company.Industry,
		EmployeeCount: size,
		CreatedAt:     created,
	}

	r.log.Info().
		Str("org", company.Name).
		Int("employees", size).
		Time("created_at", created).
		Msg("generated organization")

	return nil
}
