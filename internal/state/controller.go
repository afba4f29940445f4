package state

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Producer performs one fetch for param.
type Producer[P comparable, T any] func(ctx context.Context, param P) (T, error)

// Describer turns a fetch error into the message stored in Failed.
type Describer func(error) string

// Result is the outcome of one Fetch, tagged with the activation that
// started it.
type Result[P comparable, T any] struct {
	Generation uint64
	Param      P
	Value      T
	Err        error
	// Skipped is set when the activation was superseded before the
	// producer ran.
	Skipped bool
}

// Fetch runs the producer for one activation. It is safe to call from any
// goroutine and must be called at most once.
type Fetch[P comparable, T any] func() Result[P, T]

// Option configures a Controller.
type Option func(*options)

type options struct {
	name     string
	describe Describer
	logger   log.FieldLogger
}

// WithName labels log entries for this controller.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDescriber sets how errors become Failed reasons.
func WithDescriber(fn Describer) Option {
	return func(o *options) {
		if fn != nil {
			o.describe = fn
		}
	}
}

// WithLogger routes transition logging to logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

const defaultFailureReason = "fetch failed"

func defaultDescribe(error) string { return defaultFailureReason }

// Controller owns the fetch lifecycle of one screen.
//
// Activate, Resolve, Reload, Fail, Deactivate and Subscribe must be called
// from a single goroutine (the UI update loop). Only the Fetch closure runs
// elsewhere, and it reads nothing but the atomic generation.
type Controller[P comparable, T any] struct {
	produce Producer[P, T]
	opts    options
	logger  log.FieldLogger

	generation atomic.Uint64

	state    State[T]
	param    P
	hasParam bool
	active   bool
	cancel   context.CancelFunc

	subs    map[int]func(State[T])
	nextSub int
}

// NewController builds a Controller around produce.
func NewController[P comparable, T any](produce Producer[P, T], opts ...Option) *Controller[P, T] {
	o := options{describe: defaultDescribe, logger: log.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if o.name != "" {
		logger = logger.WithField("controller", o.name)
	}
	return &Controller[P, T]{
		produce: produce,
		opts:    o,
		logger:  logger,
		state:   Pending[T](),
		subs:    make(map[int]func(State[T])),
	}
}

// State returns the current state.
func (c *Controller[P, T]) State() State[T] {
	return c.state
}

// Param returns the parameter of the current activation.
func (c *Controller[P, T]) Param() (P, bool) {
	return c.param, c.hasParam
}

// Active reports whether the controller has a live activation.
func (c *Controller[P, T]) Active() bool {
	return c.active
}

// Activate starts a fetch for param. When the controller is already active
// for an equal param nothing happens and ok is false. Otherwise the state
// resets to Pending, any in-flight fetch is cancelled, and the returned Fetch
// must be run (typically as a background command) and its Result passed to
// Resolve.
func (c *Controller[P, T]) Activate(ctx context.Context, param P) (fetch Fetch[P, T], ok bool) {
	if c.active && c.hasParam && c.param == param {
		return nil, false
	}
	return c.start(ctx, param), true
}

// Reload re-runs the fetch for the current param. ok is false when there is
// no param to reload.
func (c *Controller[P, T]) Reload(ctx context.Context) (fetch Fetch[P, T], ok bool) {
	if !c.hasParam {
		return nil, false
	}
	return c.start(ctx, c.param), true
}

// Fail activates the controller directly into Failed without running the
// producer. Use it when the parameter is absent or cannot be decoded.
func (c *Controller[P, T]) Fail(err error) {
	c.stopInFlight()
	c.generation.Inc()

	var zero P
	c.param = zero
	c.hasParam = false
	c.active = true
	c.logger.WithError(err).Debug("failing without fetch")
	c.transition(Failed[T](c.opts.describe(err)))
}

// Resolve applies r when it belongs to the current activation and reports
// whether the state changed. Results from superseded or deactivated
// activations are dropped.
func (c *Controller[P, T]) Resolve(r Result[P, T]) bool {
	current := c.generation.Load()
	if !c.active || r.Skipped || r.Generation != current {
		c.logger.WithFields(log.Fields{
			"generation": r.Generation,
			"current":    current,
		}).Debug("dropping stale fetch result")
		return false
	}
	if !c.state.IsPending() {
		return false
	}

	if r.Err != nil {
		c.logger.WithField("generation", r.Generation).Warnf("fetch failed: %v", r.Err)
		c.transition(Failed[T](c.opts.describe(r.Err)))
		return true
	}
	c.transition(Ready(r.Value))
	return true
}

// Deactivate ends the current activation. In-flight work is cancelled and
// its eventual result is ignored.
func (c *Controller[P, T]) Deactivate() {
	if !c.active {
		return
	}
	c.stopInFlight()
	c.generation.Inc()
	c.active = false
}

// Run activates param and blocks until the fetch resolves. It is meant for
// callers without an event loop.
func (c *Controller[P, T]) Run(ctx context.Context, param P) State[T] {
	if fetch, ok := c.Activate(ctx, param); ok {
		c.Resolve(fetch())
	}
	return c.state
}

// Subscribe registers fn to observe every state transition. The returned
// function removes the subscription.
func (c *Controller[P, T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

func (c *Controller[P, T]) start(ctx context.Context, param P) Fetch[P, T] {
	if ctx == nil {
		ctx = context.Background()
	}
	c.stopInFlight()
	gen := c.generation.Inc()

	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.param = param
	c.hasParam = true
	c.active = true
	c.transition(Pending[T]())

	produce := c.produce
	return func() Result[P, T] {
		defer cancel()
		if c.generation.Load() != gen {
			return Result[P, T]{Generation: gen, Param: param, Err: context.Canceled, Skipped: true}
		}
		value, err := produce(fetchCtx, param)
		return Result[P, T]{Generation: gen, Param: param, Value: value, Err: err}
	}
}

func (c *Controller[P, T]) stopInFlight() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller[P, T]) transition(next State[T]) {
	c.state = next
	c.logger.WithFields(log.Fields{
		"generation": c.generation.Load(),
		"status":     next.Status().String(),
	}).Debug("fetch state changed")
	for _, fn := range c.subs {
		fn(next)
	}
}
