package latency

import (
	"context"
	"testing"
	"time"

	"github.com/chris/upi-wallet/pkg/fixtures"
	"github.com/chris/upi-wallet/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelay(t *testing.T) {
	s := New(nil, 10*time.Millisecond, 20*time.Millisecond)
	for i := 0; i < 100; i++ {
		d := s.delay()
		assert.GreaterOrEqual(t, d, 10*time.Millisecond)
		assert.Less(t, d, 20*time.Millisecond)
	}

	assert.Equal(t, 5*time.Millisecond, New(nil, 5*time.Millisecond, time.Millisecond).delay())
	assert.Zero(t, New(nil, 0, 0).delay())
}

func TestStore(t *testing.T) {
	t.Run("Delegates", func(t *testing.T) {
		s := New(memory.New(fixtures.MustLoad()), time.Millisecond, 2*time.Millisecond)

		start := time.Now()
		bills, err := s.ListPendingBills(context.Background())

		require.NoError(t, err)
		assert.Len(t, bills, 5)
		assert.GreaterOrEqual(t, time.Since(start), time.Millisecond)
	})

	t.Run("Cancelled", func(t *testing.T) {
		s := New(memory.New(fixtures.MustLoad()), time.Hour, time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		acct, err := s.GetAccount(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, acct)
	})

	t.Run("Deadline", func(t *testing.T) {
		s := New(memory.New(fixtures.MustLoad()), time.Hour, time.Hour)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := s.GetTotalAmount(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
