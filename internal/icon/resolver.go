package icon

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrResolverStopped = errors.New("icon: resolver stopped")

// Suggester is the outbound capability the resolver exercises. *Client
// satisfies it.
type Suggester interface {
	Suggest(ctx context.Context, text string) string
}

// Request identifies the task whose icon should be resolved. Date and TaskID
// travel through unchanged so the result can be matched back to its bucket.
type Request struct {
	Date   string
	TaskID int64
	Text   string
}

type Result struct {
	Date   string
	TaskID int64
	Icon   string
}

// Resolver runs icon suggestions on a single background worker and delivers
// results on a buffered channel. Delivery is best-effort: when the channel is
// full the result is dropped and counted, never blocked on. There is no
// cancellation of in-flight requests; racing requests for the same task are
// resolved last-write-wins by the consumer.
type Resolver struct {
	mu        sync.Mutex
	suggester Suggester
	timeout   time.Duration
	queue     []Request
	out       chan Result
	wakeup    chan struct{}
	stopCh    chan struct{}
	doneCh    chan struct{}
	started   bool
	stopped   bool
	dropped   uint64
}

func NewResolver(suggester Suggester, bufferSize int, timeout time.Duration) *Resolver {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Resolver{
		suggester: suggester,
		timeout:   timeout,
		out:       make(chan Result, bufferSize),
		wakeup:    make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

func (r *Resolver) C() <-chan Result {
	return r.out
}

func (r *Resolver) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.started = true
	go r.loop()
}

func (r *Resolver) Stop() {
	r.mu.Lock()
	if !r.started || r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	close(r.stopCh)
	r.mu.Unlock()
	<-r.doneCh
}

func (r *Resolver) Submit(req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return ErrResolverStopped
	}
	r.queue = append(r.queue, req)
	r.signalWakeup()
	return nil
}

func (r *Resolver) Dropped() uint64 {
	return atomic.LoadUint64(&r.dropped)
}

func (r *Resolver) loop() {
	defer close(r.doneCh)
	defer close(r.out)

	for {
		select {
		case <-r.wakeup:
		case <-r.stopCh:
			return
		}
		for {
			req, ok := r.pop()
			if !ok {
				break
			}
			r.resolve(req)
		}
	}
}

func (r *Resolver) resolve(req Request) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	resolved := r.suggester.Suggest(ctx, req.Text)
	cancel()

	res := Result{Date: req.Date, TaskID: req.TaskID, Icon: resolved}
	select {
	case r.out <- res:
	default:
		atomic.AddUint64(&r.dropped, 1)
	}
}

func (r *Resolver) pop() (Request, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return Request{}, false
	}
	req := r.queue[0]
	r.queue = r.queue[1:]
	return req, true
}

func (r *Resolver) signalWakeup() {
	select {
	case r.wakeup <- struct{}{}:
	default:
	}
}
