package topic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mreqlib/mreq/internal/bus/topic"
	"github.com/mreqlib/mreq/pkg/platform/platformfakes"
)

// TestEveryOperationLocksAndUnlocksExactlyOnce guards the invariant
// every Topic method relies on: one critical section per call, never
// left locked on any return path.
func TestEveryOperationLocksAndUnlocksExactlyOnce(t *testing.T) {
	fake := &platformfakes.FakeMutex{}
	tp := topic.New[reading]("test.topic", 2, 2, fake, nil)

	tp.Publish(reading{ID: 1})
	require.Equal(t, 1, fake.LockCallCount())
	require.Equal(t, 1, fake.UnlockCallCount())

	token, err := tp.Subscribe()
	require.NoError(t, err)
	require.Equal(t, 2, fake.LockCallCount())
	require.Equal(t, 2, fake.UnlockCallCount())

	tp.Check(token)
	require.Equal(t, 3, fake.LockCallCount())
	require.Equal(t, 3, fake.UnlockCallCount())

	tp.Read(token)
	require.Equal(t, 4, fake.LockCallCount())
	require.Equal(t, 4, fake.UnlockCallCount())

	tp.Unsubscribe(token)
	require.Equal(t, 5, fake.LockCallCount())
	require.Equal(t, 5, fake.UnlockCallCount())
}
