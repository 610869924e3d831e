package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// toggle commits a save-style boolean flip against a fake server.
func toggle(t *testing.T, f *Field[bool], server *bool, local *bool, fail bool) error {
	t.Helper()
	prev := *local
	return f.Mutate(context.Background(), prev, !prev,
		func(v bool) { *local = v },
		func(ctx context.Context) (bool, error) {
			if fail {
				return false, errors.New("network down")
			}
			*server = !*server
			return *server, nil
		},
	)
}

func TestMutate_ToggleTwiceReturnsToOriginal(t *testing.T) {
	var f Field[bool]
	server, local := false, false

	require.NoError(t, toggle(t, &f, &server, &local, false))
	require.True(t, local)
	require.Equal(t, server, local)

	require.NoError(t, toggle(t, &f, &server, &local, false))
	require.False(t, local)
	require.Equal(t, server, local)
}

func TestMutate_RollbackOnFailure(t *testing.T) {
	var f Field[bool]
	server, local := true, true

	err := toggle(t, &f, &server, &local, true)
	require.Error(t, err)
	require.True(t, local, "failed mutation must revert to the pre-click value")
	require.True(t, server)
}

func TestMutate_AppliesOptimisticValueBeforeCommit(t *testing.T) {
	var f Field[int]
	local := 10

	err := f.Mutate(context.Background(), 10, 11,
		func(v int) { local = v },
		func(ctx context.Context) (int, error) {
			// the optimistic value must already be visible while the
			// request is in flight
			require.Equal(t, 11, local)
			return 11, nil
		},
	)
	require.NoError(t, err)
	require.Equal(t, 11, local)
}

func TestMutate_ReconcilesWithServerValue(t *testing.T) {
	var f Field[int]
	local := 10

	// server disagrees with the optimistic guess (someone else liked too)
	err := f.Mutate(context.Background(), 10, 11,
		func(v int) { local = v },
		func(ctx context.Context) (int, error) { return 12, nil },
	)
	require.NoError(t, err)
	require.Equal(t, 12, local)
}

func TestMutate_SingleFlight(t *testing.T) {
	var f Field[bool]
	local := false

	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- f.Mutate(context.Background(), false, true,
			func(v bool) { local = v },
			func(ctx context.Context) (bool, error) {
				<-release
				return true, nil
			},
		)
	}()

	// wait until the first mutation applied its optimistic value
	require.Eventually(t, func() bool { return local }, testWait, testTick)

	err := f.Mutate(context.Background(), true, false,
		func(v bool) { local = v },
		func(ctx context.Context) (bool, error) { return false, nil },
	)
	require.ErrorIs(t, err, ErrMutationInFlight)
	require.True(t, local, "rejected mutation must not touch state")

	close(release)
	require.NoError(t, <-done)
	require.True(t, local)
}

func TestConfirmed_AppliesOnlyOnSuccess(t *testing.T) {
	var f Field[int]
	count := 3

	err := f.Confirmed(context.Background(),
		func(v int) { count = v },
		func(ctx context.Context) (int, bool, error) { return 4, true, nil },
	)
	require.NoError(t, err)
	require.Equal(t, 4, count)

	// duplicate mark: the server declares "ignored", the counter must not move
	err = f.Confirmed(context.Background(),
		func(v int) { count = v },
		func(ctx context.Context) (int, bool, error) { return 5, false, nil },
	)
	require.NoError(t, err)
	require.Equal(t, 4, count)
}

func TestConfirmed_ErrorLeavesStateAlone(t *testing.T) {
	var f Field[int]
	count := 3

	err := f.Confirmed(context.Background(),
		func(v int) { count = v },
		func(ctx context.Context) (int, bool, error) { return 0, false, errors.New("boom") },
	)
	require.Error(t, err)
	require.Equal(t, 3, count)
}
