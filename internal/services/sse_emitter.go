package services

import (
	"context"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/realtime"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/realtime/bus"
)

type SSEEmitter interface {
	Emit(ctx context.Context, msg realtime.SSEMessage) error
}

// HubEmitter delivers straight to this process's subscribers.
type HubEmitter struct{ Hub *realtime.SSEHub }

func (e *HubEmitter) Emit(ctx context.Context, msg realtime.SSEMessage) error {
	if e == nil || e.Hub == nil {
		return nil
	}
	e.Hub.Broadcast(msg)
	return nil
}

// BusEmitter publishes through a bus so every instance's hub sees the message.
type BusEmitter struct{ Bus bus.Bus }

func (e *BusEmitter) Emit(ctx context.Context, msg realtime.SSEMessage) error {
	if e == nil || e.Bus == nil {
		return nil
	}
	return e.Bus.Publish(ctx, msg)
}
