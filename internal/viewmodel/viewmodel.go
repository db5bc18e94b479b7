// Package viewmodel coordinates a single cat card: it asks the combiner for a
// fact and an image, hands successful models to the attached view and
// reports failures to a diagnostics sink.
package viewmodel

//go:generate mockgen -source=viewmodel.go -destination=mocks/mock_viewmodel.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/janiskrasemann/whisker/internal/aggregator"
	"github.com/janiskrasemann/whisker/internal/cats"
	"github.com/janiskrasemann/whisker/internal/logging"
)

// View receives successfully combined models.
type View interface {
	Populate(model cats.FactAndImage)
}

// Diagnostics receives warnings for every failed run.
type Diagnostics interface {
	TrackWarning(ctx context.Context, message string)
}

// Combiner produces one display model per call.
type Combiner interface {
	Combine(ctx context.Context) aggregator.Result[cats.FactAndImage]
}

// Recorder observes the outcome of each run.
type Recorder interface {
	ObserveRun(outcome string, elapsed time.Duration)
}

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// viewSlot boxes a View so that a nil view can be stored atomically.
type viewSlot struct {
	view View
}

type ViewModel struct {
	combiner Combiner
	diag     Diagnostics
	recorder Recorder
	logger   logging.Logger
	generic  string

	view atomic.Pointer[viewSlot]

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

type Option func(*ViewModel)

func WithRecorder(r Recorder) Option {
	return func(vm *ViewModel) { vm.recorder = r }
}

func WithLogger(l logging.Logger) Option {
	return func(vm *ViewModel) { vm.logger = l }
}

// WithGenericMessage sets the text reported for panics that carry no message.
func WithGenericMessage(msg string) Option {
	return func(vm *ViewModel) {
		if msg != "" {
			vm.generic = msg
		}
	}
}

// New creates a view-model whose scope is derived from parent. Cancelling
// parent, or calling Close, cancels every in-flight run.
func New(parent context.Context, combiner Combiner, diag Diagnostics, opts ...Option) *ViewModel {
	ctx, cancel := context.WithCancel(parent)
	vm := &ViewModel{
		combiner: combiner,
		diag:     diag,
		logger:   logging.Nop(),
		generic:  aggregator.DefaultGenericMessage,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Attach replaces the current view.
func (vm *ViewModel) Attach(v View) {
	vm.view.Store(&viewSlot{view: v})
}

// Detach clears the current view. Later results are dropped.
func (vm *ViewModel) Detach() {
	vm.view.Store(nil)
}

func (vm *ViewModel) currentView() View {
	if slot := vm.view.Load(); slot != nil {
		return slot.view
	}
	return nil
}

// OnInitComplete starts one run in the background and returns immediately.
func (vm *ViewModel) OnInitComplete() {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		vm.logger.Debug("view-model closed, ignoring run request")
		return
	}
	vm.wg.Add(1)
	vm.mu.Unlock()

	ctx := logging.WithRunID(vm.ctx, uuid.NewString())
	go func() {
		defer vm.wg.Done()
		defer vm.recoverRun(ctx)
		vm.run(ctx)
	}()
}

func (vm *ViewModel) run(ctx context.Context) {
	start := time.Now()
	res := vm.combiner.Combine(ctx)
	elapsed := time.Since(start)

	if ctx.Err() != nil {
		vm.logger.Debug("run cancelled, dropping result",
			logging.String("run_id", logging.RunID(ctx)))
		return
	}

	if model, ok := res.Get(); ok {
		vm.observe(OutcomeSuccess, elapsed)
		vm.logger.Info("cat card ready",
			logging.String("run_id", logging.RunID(ctx)),
			logging.Duration("elapsed", elapsed))
		if v := vm.currentView(); v != nil {
			v.Populate(model)
		}
		return
	}

	vm.observe(OutcomeFailure, elapsed)
	vm.diag.TrackWarning(ctx, res.Message())
}

func (vm *ViewModel) observe(outcome string, elapsed time.Duration) {
	if vm.recorder != nil {
		vm.recorder.ObserveRun(outcome, elapsed)
	}
}

// recoverRun is the last line of defence for a run: anything that panics
// past the combiner ends up in diagnostics.
func (vm *ViewModel) recoverRun(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	msg := vm.generic
	switch v := r.(type) {
	case error:
		if v.Error() != "" {
			msg = v.Error()
		}
	default:
		if s := fmt.Sprint(v); s != "" {
			msg = s
		}
	}
	vm.logger.Warn("run panicked",
		logging.String("run_id", logging.RunID(ctx)),
		logging.String("panic", msg))
	vm.diag.TrackWarning(ctx, msg)
}

// Wait blocks until every run started so far has finished.
func (vm *ViewModel) Wait() {
	vm.wg.Wait()
}

// Close cancels in-flight runs and waits for them to return. Runs requested
// after Close are ignored.
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	vm.closed = true
	vm.mu.Unlock()

	vm.cancel()
	vm.wg.Wait()
}
