package cron_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/infras/cron"
)

func TestScheduler_Register(t *testing.T) {
	scheduler := cron.New()

	err := scheduler.Register("sweep", "@every 1h", "test sweep", func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	statuses := scheduler.Status()
	require.Len(t, statuses, 1)
	assert.Equal(t, "sweep", statuses[0].Name)
	assert.Equal(t, "@every 1h", statuses[0].Schedule)
	assert.True(t, statuses[0].Running)
	assert.Nil(t, statuses[0].LastRun)
}

func TestScheduler_Register_Duplicate(t *testing.T) {
	scheduler := cron.New()

	require.NoError(t, scheduler.Register("sweep", "@every 1h", "", func(ctx context.Context) error { return nil }))

	err := scheduler.Register("sweep", "@every 2h", "", func(ctx context.Context) error { return nil })

	assert.Error(t, err)
}

func TestScheduler_Register_InvalidSpec(t *testing.T) {
	scheduler := cron.New()

	err := scheduler.Register("sweep", "not a cron spec", "", func(ctx context.Context) error { return nil })

	assert.Error(t, err)
}

func TestScheduler_Run(t *testing.T) {
	scheduler := cron.New()

	ran := 0
	require.NoError(t, scheduler.Register("sweep", "@every 1h", "", func(ctx context.Context) error {
		ran++

		return nil
	}))

	require.NoError(t, scheduler.Run(context.Background(), "sweep"))
	assert.Equal(t, 1, ran)

	statuses := scheduler.Status()
	require.Len(t, statuses, 1)
	assert.NotNil(t, statuses[0].LastRun)
	assert.Empty(t, statuses[0].LastError)
}

func TestScheduler_Run_RecordsError(t *testing.T) {
	scheduler := cron.New()

	require.NoError(t, scheduler.Register("sweep", "@every 1h", "", func(ctx context.Context) error {
		return errors.New("db down")
	}))

	err := scheduler.Run(context.Background(), "sweep")
	require.Error(t, err)

	statuses := scheduler.Status()
	require.Len(t, statuses, 1)
	assert.Contains(t, statuses[0].LastError, "db down")
}

func TestScheduler_Run_UnknownJob(t *testing.T) {
	scheduler := cron.New()

	assert.Error(t, scheduler.Run(context.Background(), "missing"))
}

func TestScheduler_StopAndStart(t *testing.T) {
	scheduler := cron.New()

	require.NoError(t, scheduler.Register("sweep", "@every 1h", "", func(ctx context.Context) error { return nil }))

	require.NoError(t, scheduler.Stop("sweep"))
	assert.False(t, scheduler.Status()[0].Running)

	// Stopping twice is a no-op.
	require.NoError(t, scheduler.Stop("sweep"))

	require.NoError(t, scheduler.Start("sweep"))
	assert.True(t, scheduler.Status()[0].Running)

	// A stopped job can still be run manually.
	require.NoError(t, scheduler.Stop("sweep"))
	assert.NoError(t, scheduler.Run(context.Background(), "sweep"))
}

func TestScheduler_StopUnknownJob(t *testing.T) {
	scheduler := cron.New()

	assert.Error(t, scheduler.Stop("missing"))
	assert.Error(t, scheduler.Start("missing"))
}

func TestScheduler_StatusPreservesRegistrationOrder(t *testing.T) {
	scheduler := cron.New()

	names := []string{"expire", "confirm", "complete", "overdue"}
	for _, name := range names {
		require.NoError(t, scheduler.Register(name, "@every 1h", "", func(ctx context.Context) error { return nil }))
	}

	statuses := scheduler.Status()
	require.Len(t, statuses, len(names))

	for idx, status := range statuses {
		assert.Equal(t, names[idx], status.Name)
	}
}

func TestScheduler_StopAllStartAll(t *testing.T) {
	scheduler := cron.New()

	require.NoError(t, scheduler.Register("a", "@every 1h", "", func(ctx context.Context) error { return nil }))
	require.NoError(t, scheduler.Register("b", "@every 1h", "", func(ctx context.Context) error { return nil }))

	scheduler.StopAll()

	for _, status := range scheduler.Status() {
		assert.False(t, status.Running)
	}

	scheduler.StartAll()

	for _, status := range scheduler.Status() {
		assert.True(t, status.Running)
	}
}
