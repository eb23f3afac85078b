package bus

import (
	"context"
	"sync"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/realtime"
)

// localBus delivers messages in process. Used when REDIS_ADDR is unset and
// only one server instance runs.
type localBus struct {
	mu       sync.RWMutex
	handlers []func(m realtime.SSEMessage)
	closed   bool
}

func NewLocalBus() Bus {
	return &localBus{}
}

func (b *localBus) Publish(ctx context.Context, msg realtime.SSEMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}
	for _, h := range b.handlers {
		h(msg)
	}
	return nil
}

func (b *localBus) StartForwarder(ctx context.Context, onMsg func(m realtime.SSEMessage)) error {
	if onMsg == nil {
		return errNoCallback
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.handlers = append(b.handlers, onMsg)
	return nil
}

func (b *localBus) Close() error {
	b.mu.Lock()
	b.closed = true
	b.handlers = nil
	b.mu.Unlock()
	return nil
}
