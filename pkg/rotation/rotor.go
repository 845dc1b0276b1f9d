package rotation

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

var (
	// ErrNoWords is returned by Start when the rotor has nothing to rotate.
	ErrNoWords = errors.New("rotation: empty word list")
	// ErrAlreadyStarted is returned by Start on a running rotor.
	ErrAlreadyStarted = errors.New("rotation: already started")
)

const (
	defaultStartDelay = time.Second
	defaultInterval   = 3 * time.Second

	// secondaryOffset keeps the second word slot out of phase with the first.
	secondaryOffset = 5
)

// Option configures a Rotor.
type Option func(*Rotor)

// WithStartDelay sets the delay before the first advance.
func WithStartDelay(d time.Duration) Option {
	return func(r *Rotor) { r.startDelay = d }
}

// WithInterval sets the advance interval.
func WithInterval(d time.Duration) Option {
	return func(r *Rotor) { r.interval = d }
}

// Rotor cycles through a shuffled word list on a timer.
type Rotor struct {
	words      []string
	startDelay time.Duration
	interval   time.Duration

	mu      sync.Mutex
	index   int
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New returns a Rotor over a shuffled copy of words.
func New(words []string, opts ...Option) *Rotor {
	shuffled := make([]string, len(words))
	copy(shuffled, words)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	r := &Rotor{
		words:      shuffled,
		startDelay: defaultStartDelay,
		interval:   defaultInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches the rotation loop. It returns immediately; the loop runs
// until ctx is cancelled or Stop is called.
func (r *Rotor) Start(ctx context.Context) error {
	if len(r.words) == 0 {
		return ErrNoWords
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return ErrAlreadyStarted
	}
	r.started = true

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.loop(ctx)
	return nil
}

func (r *Rotor) loop(ctx context.Context) {
	defer close(r.done)

	select {
	case <-time.After(r.startDelay):
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.advance()
		case <-ctx.Done():
			return
		}
	}
}

func (r *Rotor) advance() {
	r.mu.Lock()
	r.index = (r.index + 1) % len(r.words)
	r.mu.Unlock()
}

// Stop cancels the rotation loop and waits for it to exit. Safe to call
// repeatedly and before Start.
func (r *Rotor) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Current returns the words for the primary and secondary slots.
func (r *Rotor) Current() (primary, secondary string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.words) == 0 {
		return "", ""
	}
	primary = r.words[r.index]
	secondary = r.words[(r.index+secondaryOffset)%len(r.words)]
	return primary, secondary
}

// Words returns the shuffled rotation order.
func (r *Rotor) Words() []string {
	out := make([]string, len(r.words))
	copy(out, r.words)
	return out
}
