package messagebus_test

import (
	"context"
	"errors"
	"testing"

	"crm/pkg/messagebus"
	mockstorage "crm/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRiverBus_Send_EnqueuesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mockstorage.NewMockJobStorage(ctrl)
	bus := messagebus.NewRiverBus(jobs, 5)

	jobs.EXPECT().
		AddJob(gomock.Any(), messagebus.JobArgs{Message: "hello"}, &river.InsertOpts{MaxAttempts: 5}).
		Return(true, nil)

	require.NoError(t, bus.Send(context.Background(), "hello"))
}

func TestRiverBus_Send_PropagatesEnqueueError(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mockstorage.NewMockJobStorage(ctrl)
	bus := messagebus.NewRiverBus(jobs, 5)

	jobs.EXPECT().
		AddJob(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errors.New("connection lost"))

	err := bus.Send(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not enqueue outbound message")
}
