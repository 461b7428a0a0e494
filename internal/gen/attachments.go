package gen

import (
	"context"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/refdata"
)

const (
	minAttachmentBytes = 10 << 10
	maxAttachmentBytes = 5 << 20
)

// generateAttachments uploads one or two files to a small share of tasks,
// within each task's active lifetime.
func (r *run) generateAttachments(context.Context) error {
	hasAttachment, err := r.lib.Bernoulli(dist.HasAttachment)
	if err != nil {
		return err
	}
	perTask, err := r.lib.Range(dist.AttachmentsPerTask)
	if err != nil {
		return err
	}

	for _, t := range r.ds.Tasks {
		if !hasAttachment.Sample(r.rng) {
			continue
		}

		upper := r.win.Now
		if t.CompletedAt != nil {
			upper = *t.CompletedAt
		}

		n := perTask.Sample(r.rng)
		for i := 0; i < n; i++ {
			created := timeBetween(r.rng, t.CreatedAt, upper)

			uploader := r.memberHiredBefore(r.projectMembers[*t.ProjectID], created)
			if uploader == nil {
				uploader = r.usersByID[t.CreatedByID]
			}

			r.ds.Attachments = append(r.ds.Attachments, &model.Attachment{
				AttachmentID: newID(r.rng),
				TaskID:       t.TaskID,
				UploadedByID: uploader.UserID,
				FileName:     pick(r.rng, refdata.AttachmentNames),
				FileSize:     int64(minAttachmentBytes + r.rng.Intn(maxAttachmentBytes-minAttachmentBytes)),
				CreatedAt:    created,
			})
		}
	}

	r.log.Info().Int("attachments", len(r.ds.Attachments)).Msg("generated attachments")
	return nil
}
