package audit

import (
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID *uint
	Email    string
	Metadata any
}

// Dispatcher writes audit events off the request path. Events are dropped
// when the queue is full so auditing never blocks a request.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log.Named("audit"),
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			d.log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.String("email", ev.Email),
				zap.Error(err),
			)
		}
	}
}

// Dispatch is a no-op on a nil dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for queued ones to be written.
// Dispatch must not be called after Close.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
