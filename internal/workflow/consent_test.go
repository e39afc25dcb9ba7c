package workflow

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsclub/admincore/internal/domain"
)

type consentSpy struct {
	mu       sync.Mutex
	calls    int
	lastGave bool
	resp     *domain.MessageResponse
	err      error
	entered  chan struct{}
	release  chan struct{}
}

func (s *consentSpy) VerifyParentConsent(_ context.Context, _ string, consentGiven bool) (*domain.MessageResponse, error) {
	s.mu.Lock()
	s.calls++
	s.lastGave = consentGiven
	s.mu.Unlock()
	if s.entered != nil {
		close(s.entered)
		<-s.release
	}
	return s.resp, s.err
}

func (s *consentSpy) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestConsent_EmptyTokenErrorsWithoutNetwork(t *testing.T) {
	spy := &consentSpy{}
	c := NewConsent(spy, "")

	assert.Equal(t, ConsentErrored, c.State())
	assert.NotEmpty(t, c.Message())
	assert.Zero(t, spy.callCount())

	_, err := c.Approve(context.Background())
	require.Error(t, err, "no decision possible from Errored")
	assert.Zero(t, spy.callCount())
}

func TestConsent_ApproveOnce(t *testing.T) {
	spy := &consentSpy{resp: &domain.MessageResponse{Message: "Consent granted, the player's account has been activated"}}
	c := NewConsent(spy, "tok-1")
	assert.Equal(t, ConsentReady, c.State())

	res, err := c.Approve(context.Background())
	require.NoError(t, err)
	assert.True(t, spy.lastGave)
	assert.Equal(t, ConsentRedirectDelay, res.RedirectAfter)
	assert.Equal(t, ConsentSucceeded, c.State())
	assert.Equal(t, spy.resp.Message, c.Message())

	// The decision is final.
	_, err = c.Reject(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, spy.callCount(), "never double-sent")
}

func TestConsent_Reject(t *testing.T) {
	spy := &consentSpy{resp: &domain.MessageResponse{Message: "Consent declined, the player's account stays inactive"}}
	c := NewConsent(spy, "tok-2")

	res, err := c.Reject(context.Background())
	require.NoError(t, err)
	assert.False(t, spy.lastGave)
	assert.Equal(t, spy.resp.Message, res.Message)
}

func TestConsent_ServerFailureCarriesMessage(t *testing.T) {
	spy := &consentSpy{err: domain.ErrRequestFailed("consent token expired")}
	c := NewConsent(spy, "tok-3")

	_, err := c.Approve(context.Background())
	require.Error(t, err)
	assert.Equal(t, ConsentErrored, c.State())
	assert.Contains(t, c.Message(), "consent token expired")
}

func TestConsent_RejectsSecondDecisionInFlight(t *testing.T) {
	spy := &consentSpy{
		resp:    &domain.MessageResponse{Message: "ok"},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := NewConsent(spy, "tok-4")

	done := make(chan error, 1)
	go func() {
		_, err := c.Approve(context.Background())
		done <- err
	}()

	<-spy.entered
	assert.Equal(t, ConsentSubmitting, c.State())
	_, err := c.Reject(context.Background())
	require.Error(t, err, "both actions disabled while submitting")

	close(spy.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, spy.callCount())
}
