package messagebus_test

import (
	"context"
	"errors"
	"testing"

	"crm/pkg/messagebus"
	mockmessagebus "crm/pkg/messagebus/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type spyBus struct {
	messages []string
	err      error
}

func (s *spyBus) Send(_ context.Context, message string) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, message)

	return nil
}

func TestMessageBus_SendEmailChangedMessage(t *testing.T) {
	spy := &spyBus{}
	bus := messagebus.New(spy)

	err := bus.SendEmailChangedMessage(context.Background(), 7, "new@gmail.com")
	require.NoError(t, err)

	// downstream consumers parse this text, so it must match byte for byte
	require.Equal(t, []string{"Type: USER EMAIL CHANGED; Id: 7; NewEmail: new@gmail.com"}, spy.messages)
}

func TestMessageBus_SendEmailChangedMessage_PropagatesBusError(t *testing.T) {
	ctrl := gomock.NewController(t)
	underlying := mockmessagebus.NewMockBus(ctrl)
	bus := messagebus.New(underlying)

	underlying.EXPECT().
		Send(gomock.Any(), "Type: USER EMAIL CHANGED; Id: 7; NewEmail: new@gmail.com").
		Return(errors.New("queue unavailable"))

	err := bus.SendEmailChangedMessage(context.Background(), 7, "new@gmail.com")
	require.Error(t, err)
}
