package planning

import (
	"context"
	"time"

	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

type DragMode int

const (
	DragMove DragMode = iota
	DragResizeStart
	DragResizeEnd
)

// Committer submits a changed span to the server. Implementations return a
// *schedule.ConflictError when the server rejects the change for overlap.
type Committer interface {
	Commit(ctx context.Context, id uuid.UUID, span schedule.TimeSpan) error
}

type CommitterFunc func(ctx context.Context, id uuid.UUID, span schedule.TimeSpan) error

func (f CommitterFunc) Commit(ctx context.Context, id uuid.UUID, span schedule.TimeSpan) error {
	return f(ctx, id, span)
}

type Preview struct {
	Span     schedule.TimeSpan
	Conflict bool
}

// DragSession tracks one drag gesture on one span. The preview is optimistic:
// it is shown immediately and rolled back if the commit fails.
type DragSession struct {
	model    *Model
	item     schedule.Span
	mode     DragMode
	others   []schedule.Span
	original schedule.TimeSpan
	preview  Preview
}

// BeginDrag starts dragging item; others is the occupancy currently displayed.
func (m *Model) BeginDrag(item schedule.Span, mode DragMode, others []schedule.Span) *DragSession {
	return &DragSession{
		model:    m,
		item:     item,
		mode:     mode,
		others:   others,
		original: item.TimeSpan(),
		preview:  Preview{Span: item.TimeSpan()},
	}
}

// Update recomputes the preview for a pointer that moved pixelDelta since the drag began.
func (d *DragSession) Update(pixelDelta float64) (Preview, error) {
	delta := d.model.PixelDelta(pixelDelta)
	span, err := d.apply(delta)
	if err != nil {
		return d.preview, err
	}
	d.preview = Preview{
		Span:     span,
		Conflict: d.model.HasConflict(d.item.ResourceID(), span, d.others, d.item.ID()),
	}
	return d.preview, nil
}

func (d *DragSession) apply(delta time.Duration) (schedule.TimeSpan, error) {
	switch d.mode {
	case DragResizeStart:
		return d.model.ResizeStart(d.original, delta)
	case DragResizeEnd:
		return d.model.ResizeEnd(d.original, delta)
	default:
		return d.model.Move(d.original, delta)
	}
}

func (d *DragSession) Preview() Preview { return d.preview }

// Changed reports whether the preview differs from the span the drag started from.
func (d *DragSession) Changed() bool { return !d.preview.Span.Equal(d.original) }

// Cancel drops the preview.
func (d *DragSession) Cancel() {
	d.preview = Preview{Span: d.original}
}

// Commit submits the preview. Any failure, whether a conflict, a validation error or a
// transport error, restores the original span. A preview the model already knows to
// conflict is not sent.
func (d *DragSession) Commit(ctx context.Context, c Committer) (schedule.TimeSpan, error) {
	if !d.Changed() {
		return d.original, nil
	}
	if d.preview.Conflict {
		conflicting, _ := schedule.FindConflict(d.item.ResourceID(), d.preview.Span, d.others, d.item.ID())
		d.Cancel()
		return d.original, schedule.NewConflictError(conflicting)
	}
	if err := c.Commit(ctx, d.item.ID(), d.preview.Span); err != nil {
		d.Cancel()
		return d.original, errs.Wrap(err, "commit drag")
	}
	d.original = d.preview.Span
	return d.original, nil
}
