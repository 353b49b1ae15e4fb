package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []EmailMessage
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg EmailMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *recordingSender) messages() []EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]EmailMessage(nil), s.sent...)
}

func TestDispatcher_DeliversConfirmation(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, nil)

	err := d.NotifyBookingConfirmed(context.Background(), "a@x.com", "Alice", "Cleaning", "Jan 1, 2023", "9am")
	assert.NoError(t, err)

	d.Stop() // drains the queue

	msgs := sender.messages()
	assert.Len(t, msgs, 1)
	assert.Equal(t, "a@x.com", msgs[0].To)
	assert.Equal(t, "Your appointment for Cleaning is confirmed", msgs[0].Subject)
	assert.Contains(t, msgs[0].HTML, "Jan 1, 2023")
	assert.Contains(t, msgs[0].HTML, "9am")
}

func TestDispatcher_SendFailureStaysInternal(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(sender, nil)

	err := d.NotifyBookingConfirmed(context.Background(), "a@x.com", "", "Cleaning", "Jan 1, 2023", "9am")
	assert.NoError(t, err)

	d.Stop()
	assert.Len(t, sender.messages(), 1)
}

func TestDispatcher_EnqueueAfterStop(t *testing.T) {
	d := NewDispatcher(&recordingSender{}, nil)
	d.Stop()

	err := d.NotifyBookingConfirmed(context.Background(), "a@x.com", "", "Cleaning", "Jan 1, 2023", "9am")
	assert.Error(t, err)
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingSender{}, nil)
	d.Stop()
	d.Stop()
}
