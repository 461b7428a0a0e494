package gen

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/refdata"
)

// foundingCohort is how many of the earliest hires start at org creation.
const foundingCohort = 50

// generateUsers creates the workforce. Hire dates follow the company growth
// curve: the founding cohort at org creation, then exponential growth over
// the first year, then linear. Emails are unique within the org domain.
func (r *run) generateUsers(context.Context) error {
	count := r.ds.Org.EmployeeCount

	roleDist, err := r.lib.Weighted(dist.Role)
	if err != nil {
		return err
	}
	deptDist, err := r.lib.Weighted(dist.Department)
	if err != nil {
		return err
	}
	tzDist, err := r.lib.Weighted(dist.Timezone)
	if err != nil {
		return err
	}
	activityDist, err := r.lib.Weighted(dist.LastActiveBucket)
	if err != nil {
		return err
	}

	usedEmails := make(map[string]int)

	for i := 0; i < count; i++ {
		first := pick(r.rng, refdata.FirstNames)
		last := pick(r.rng, refdata.LastNames)
		name := first + " " + last

		email := refdata.EmailFor(first, last, r.ds.Org.Domain, 0)
		if n, taken := usedEmails[strings.ToLower(email)]; taken {
			usedEmails[strings.ToLower(email)] = n + 1
			email = refdata.EmailFor(first, last, r.ds.Org.Domain, n+1)
		} else {
			usedEmails[strings.ToLower(email)] = 1
		}

		dept := deptDist.Sample(r.rng)
		created := r.hireDate(i, count)

		u := &model.User{
			UserID:       newID(r.rng),
			OrgID:        r.ds.Org.OrgID,
			Email:        email,
			Name:         name,
			Role:         roleDist.Sample(r.rng),
			JobTitle:     r.jobTitle(dept),
			Department:   dept,
			Timezone:     tzDist.Sample(r.rng),
			IsActive:     r.rng.Float64() < 0.95,
			CreatedAt:    created,
			LastActiveAt: r.lastActive(activityDist.Sample(r.rng), created),
		}

		r.ds.Users = append(r.ds.Users, u)
		r.usersByID[u.UserID] = u
	}

	r.log.Info().Int("users", len(r.ds.Users)).Msg("generated users")
	return nil
}

// hireDate places a user on the growth curve. index orders users by hire
// time, which later stages rely on when they need someone hired before a
// given instant.
func (r *run) hireDate(index, total int) time.Time {
	orgCreated := r.ds.Org.CreatedAt
	totalMonths := r.win.Now.Sub(orgCreated).Hours() / (24 * 30)

	if index < foundingCohort {
		return orgCreated.Add(time.Duration(r.rng.Intn(8)) * 24 * time.Hour)
	}

	pct := float64(index) / float64(total)
	var month float64
	if totalMonths <= 12 {
		month = math.Log(1+pct*(math.E-1)) * totalMonths
	} else if pct < 0.6 {
		// first 60% hired in the exponential phase
		month = math.Log(1+(pct/0.6)*(math.E-1)) * 12
	} else {
		month = 12 + (pct-0.6)/0.4*(totalMonths-12)
	}

	days := month*30 + r.rng.Float64()*30 - 15
	if days < 0 {
		days = 0
	}
	if days > totalMonths*30 {
		days = totalMonths * 30
	}

	hired := orgCreated.Add(time.Duration(days * 24 * float64(time.Hour)))
	return minTime(hired, r.win.Now)
}

func (r *run) jobTitle(dept string) string {
	titles, ok := refdata.JobTitles[dept]
	if !ok {
		return fmt.Sprintf("%s Specialist", dept)
	}
	var total float64
	for _, t := range titles {
		total += t.Weight
	}
	target := r.rng.Float64() * total
	var acc float64
	for _, t := range titles {
		acc += t.Weight
		if target < acc {
			return t.Title
		}
	}
	return titles[len(titles)-1].Title
}

// lastActive samples the last-seen instant for a user: most are active
// within a week, a small tail is dormant. Never precedes the hire date.
func (r *run) lastActive(bucket string, created time.Time) time.Time {
	var daysAgo float64
	switch bucket {
	case "recent":
		daysAgo = r.rng.Float64() * 7
	case "month":
		daysAgo = 8 + r.rng.Float64()*22
	default:
		daysAgo = 31 + r.rng.Float64()*149
	}

	last := r.win.Now.Add(-time.Duration(daysAgo * 24 * float64(time.Hour)))
	return maxTime(last, created)
}
