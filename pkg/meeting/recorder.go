package meeting

import (
	"context"

	"github.com/hynux/meetlink/internal/event_bus"
	"github.com/hynux/meetlink/internal/utils"
)

// Recorder persists created meetings to the history repository. It subscribes
// to the meeting.created event so a storage failure can never change the
// response of the create-meeting pipeline.
type Recorder struct {
	repo  Repository
	clock utils.Clock
}

func NewRecorder(repo Repository, clock utils.Clock, bus *event_bus.EventBus) *Recorder {
	recorder := &Recorder{repo: repo, clock: clock}
	event_bus.SubscribeTyped[event_bus.MeetingCreated](bus, event_bus.MeetingCreatedEvent, recorder.onMeetingCreated)
	return recorder
}

func (r *Recorder) onMeetingCreated(ctx context.Context, data event_bus.MeetingCreated) error {
	return r.repo.Store(ctx, Record{
		Uid:           data.Uid,
		Summary:       data.Summary,
		Description:   data.Description,
		AttendeeEmail: data.AttendeeEmail,
		StartTime:     data.StartTime,
		EndTime:       data.EndTime,
		MeetingLink:   data.MeetingLink,
		Status:        data.Status,
		CreatedAt:     r.clock.Now(),
	})
}
