package gen

import (
	"context"
	"fmt"
	"math"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/refdata"
)

// generateCustomFields gives each project up to a few field definitions
// drawn from the catalog without replacement, then fills values for a
// majority of the project's tasks. Enum values always reference an option
// belonging to the same definition.
func (r *run) generateCustomFields(context.Context) error {
	perProject, err := r.lib.Range(dist.FieldsPerProject)
	if err != nil {
		return err
	}

	for _, p := range r.ds.Projects {
		n := perProject.Sample(r.rng)
		if n == 0 {
			continue
		}

		specs := make([]refdata.CustomFieldSpec, 0, n)
		for _, i := range r.rng.Perm(len(refdata.CustomFieldCatalog))[:n] {
			specs = append(specs, refdata.CustomFieldCatalog[i])
		}

		for _, spec := range specs {
			def := &model.CustomFieldDefinition{
				FieldID:   newID(r.rng),
				ProjectID: p.ProjectID,
				Name:      spec.Name,
				FieldType: spec.Type,
				CreatedAt: p.CreatedAt,
			}
			r.ds.FieldDefs = append(r.ds.FieldDefs, def)

			var options []*model.CustomFieldEnumOption
			for i, label := range spec.Options {
				opt := &model.CustomFieldEnumOption{
					OptionID:  newID(r.rng),
					FieldID:   def.FieldID,
					Label:     label,
					Position:  i,
					CreatedAt: p.CreatedAt,
				}
				options = append(options, opt)
				r.ds.FieldOptions = append(r.ds.FieldOptions, opt)
			}

			for _, t := range r.tasksByProject[p.ProjectID] {
				if r.rng.Float64() >= 0.6 {
					continue
				}
				r.addFieldValue(def, options, t)
			}
		}
	}

	r.log.Info().
		Int("definitions", len(r.ds.FieldDefs)).
		Int("values", len(r.ds.FieldValues)).
		Msg("generated custom fields")
	return nil
}

func (r *run) addFieldValue(def *model.CustomFieldDefinition, options []*model.CustomFieldEnumOption, t *model.Task) {
	v := &model.CustomFieldValue{
		ValueID:   newID(r.rng),
		TaskID:    t.TaskID,
		FieldID:   def.FieldID,
		CreatedAt: timeBetween(r.rng, maxTime(def.CreatedAt, t.CreatedAt), r.win.Now),
	}

	switch def.FieldType {
	case "enum":
		v.EnumOptionID = ptr(pick(r.rng, options).OptionID)
	case "number":
		// Fibonacci-ish estimates read better than uniform floats.
		v.NumberValue = ptr(math.Round(math.Pow(2, float64(r.rng.Intn(5)))))
	case "text":
		v.TextValue = ptr(fmt.Sprintf("Sprint %d", 1+r.rng.Intn(12)))
	case "date":
		v.DateValue = ptr(timeBetween(r.rng, t.CreatedAt, r.win.Now.AddDate(0, 2, 0)))
	}

	r.ds.FieldValues = append(r.ds.FieldValues, v)
}
