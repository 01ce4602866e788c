//go:build unit

package job_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleet-workflow/internal/job"
	"fleet-workflow/internal/pkg/clock"
	commandsmock "fleet-workflow/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExpiryJob_RunOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("passes the clock time to the sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		expirer := commandsmock.NewMockWorkOrderCommands(ctrl)
		expirer.EXPECT().ExpireStale(ctx, now).Return(3, nil)

		n := job.NewExpiryJob(expirer, clock.NewMockClock(now), time.Hour, nil).RunOnce(ctx)

		assert.Equal(t, 3, n)
	})

	t.Run("sweep error is logged, not raised", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		expirer := commandsmock.NewMockWorkOrderCommands(ctrl)
		expirer.EXPECT().ExpireStale(ctx, now).Return(1, errors.New("listing failed"))

		n := job.NewExpiryJob(expirer, clock.NewMockClock(now), time.Hour, nil).RunOnce(ctx)

		assert.Equal(t, 1, n)
	})
}

func TestExpiryJob_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	expirer := commandsmock.NewMockWorkOrderCommands(ctrl)

	swept := make(chan struct{}, 1)
	expirer.EXPECT().ExpireStale(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time) (int, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 0, nil
		}).MinTimes(1)

	j := job.NewExpiryJob(expirer, clock.NewMockClock(time.Now()), 5*time.Millisecond, nil)
	j.Start(context.Background())
	j.Start(context.Background())

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("expiry job never ran")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, j.Stop(stopCtx))
	require.NoError(t, j.Stop(stopCtx))
}
