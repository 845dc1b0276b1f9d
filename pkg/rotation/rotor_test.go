package rotation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixtyseconds/showcase/pkg/rotation"
)

var words = []string{"recruiting", "sourcing", "video", "sales", "content", "leads", "prospects"}

func TestNew_ShuffleKeepsAllWords(t *testing.T) {
	t.Parallel()

	r := rotation.New(words)
	assert.ElementsMatch(t, words, r.Words())
}

func TestRotor_AdvancesOnTick(t *testing.T) {
	t.Parallel()

	r := rotation.New(words,
		rotation.WithStartDelay(time.Millisecond),
		rotation.WithInterval(5*time.Millisecond),
	)
	first, _ := r.Current()

	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()

	assert.Eventually(t, func() bool {
		cur, _ := r.Current()
		return cur != first
	}, time.Second, time.Millisecond)
}

func TestRotor_SecondarySlotOutOfPhase(t *testing.T) {
	t.Parallel()

	r := rotation.New(words)
	primary, secondary := r.Current()
	assert.NotEqual(t, primary, secondary)
	assert.Contains(t, words, primary)
	assert.Contains(t, words, secondary)
}

func TestRotor_StartTwice(t *testing.T) {
	t.Parallel()

	r := rotation.New(words, rotation.WithStartDelay(time.Millisecond))
	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()

	assert.ErrorIs(t, r.Start(context.Background()), rotation.ErrAlreadyStarted)
}

func TestRotor_EmptyWords(t *testing.T) {
	t.Parallel()

	r := rotation.New(nil)
	assert.ErrorIs(t, r.Start(context.Background()), rotation.ErrNoWords)
}

func TestRotor_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	r := rotation.New(words, rotation.WithStartDelay(time.Millisecond))

	// Stop before Start is a no-op.
	r.Stop()

	require.NoError(t, r.Start(context.Background()))
	r.Stop()
	r.Stop()
}

func TestRotor_ContextCancelStopsLoop(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	r := rotation.New(words,
		rotation.WithStartDelay(time.Millisecond),
		rotation.WithInterval(time.Millisecond),
	)
	require.NoError(t, r.Start(ctx))

	cancel()
	time.Sleep(10 * time.Millisecond)

	cur, _ := r.Current()
	time.Sleep(20 * time.Millisecond)
	after, _ := r.Current()
	assert.Equal(t, cur, after, "rotor must stop advancing after context cancel")
}
