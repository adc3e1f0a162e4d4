package delivery

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/checkup/internal/report"
	"github.com/abhisek/checkup/internal/store"
)

// ErrClosed is reported for submissions made after Close.
var ErrClosed = errors.New("delivery: dispatcher closed")

// Result is the outcome of one submission across all senders.
type Result struct {
	Outcomes []Outcome
	Hint     string
}

// Dispatcher fans a payload out to every sender in the background.
type Dispatcher struct {
	senders []Sender
	events  store.EventRepo
	logger  *zap.Logger

	// OnResult, when set, is called once per submission after every sender
	// has finished. It runs on the background goroutine.
	OnResult func(Result)

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher. events may be nil.
func NewDispatcher(senders []Sender, events store.EventRepo, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		senders: senders,
		events:  events,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Submit starts delivering p and returns immediately. The returned channel
// receives exactly one Result and is then closed.
func (d *Dispatcher) Submit(p report.Payload) <-chan Result {
	out := make(chan Result, 1)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		out <- Result{Outcomes: []Outcome{{Channel: "dispatcher", Status: StatusError, Err: ErrClosed}}, Hint: HintFailed}
		close(out)
		return out
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer close(out)

		res := d.deliver(d.ctx, p)
		if d.OnResult != nil {
			d.OnResult(res)
		}
		out <- res
	}()
	return out
}

func (d *Dispatcher) deliver(ctx context.Context, p report.Payload) Result {
	outcomes := make([]Outcome, len(d.senders))
	latency := make([]time.Duration, len(d.senders))

	var g errgroup.Group
	for i, s := range d.senders {
		g.Go(func() error {
			start := time.Now()
			o := s.Send(ctx, p)
			if o.Channel == "" {
				o.Channel = s.Name()
			}
			if o.Status == StatusError && ctx.Err() != nil {
				o = Outcome{Channel: o.Channel, Status: StatusSkipped, Reason: ReasonCanceled, Mode: o.Mode, Err: o.Err}
			}
			outcomes[i] = o
			latency[i] = time.Since(start)
			return nil
		})
	}
	_ = g.Wait()

	for i, o := range outcomes {
		d.record(o, latency[i])
	}
	return Result{Outcomes: outcomes, Hint: Summarize(outcomes)}
}

func (d *Dispatcher) record(o Outcome, latency time.Duration) {
	fields := []zap.Field{
		zap.String("channel", o.Channel),
		zap.String("status", string(o.Status)),
		zap.String("reason", o.Reason),
		zap.String("mode", o.Mode),
		zap.Duration("latency", latency),
	}
	if o.Err != nil {
		d.logger.Warn("delivery failed", append(fields, zap.Error(o.Err))...)
	} else {
		d.logger.Info("delivery", fields...)
	}

	if d.events == nil {
		return
	}
	data := store.DeliveryEventData{
		Channel:   o.Channel,
		Status:    string(o.Status),
		Reason:    o.Reason,
		Mode:      o.Mode,
		LatencyMs: latency.Milliseconds(),
	}
	if o.Err != nil {
		data.ErrorMessage = o.Err.Error()
	}
	// The dispatcher context may already be canceled here.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.events.AppendDelivery(ctx, data); err != nil {
		d.logger.Warn("record delivery event", zap.Error(err))
	}
}

// Close stops accepting submissions and waits for in-flight ones until ctx
// is done, at which point they are canceled.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}
