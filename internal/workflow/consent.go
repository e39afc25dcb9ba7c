package workflow

import (
	"context"
	"sync"
	"time"

	"github.com/sportsclub/admincore/internal/domain"
)

// ConsentState is a parental-consent flow state.
type ConsentState string

const (
	ConsentLoading    ConsentState = "loading"
	ConsentReady      ConsentState = "ready"
	ConsentSubmitting ConsentState = "submitting"
	ConsentSucceeded  ConsentState = "succeeded"
	ConsentErrored    ConsentState = "errored"
)

// ConsentRedirectDelay is the grace period after a recorded decision before
// the caller should navigate away.
const ConsentRedirectDelay = 5 * time.Second

// ConsentAPI is the slice of the API client the consent flow needs.
type ConsentAPI interface {
	VerifyParentConsent(ctx context.Context, token string, consentGiven bool) (*domain.MessageResponse, error)
}

// Consent drives the parental-consent decision flow reached from the link
// in the parent's email. Exactly one decision is ever sent per token.
type Consent struct {
	mu      sync.Mutex
	api     ConsentAPI
	token   string
	state   ConsentState
	message string
}

// NewConsent validates the token from the consent link. An empty token
// lands in Errored immediately, without a network call.
func NewConsent(api ConsentAPI, token string) *Consent {
	c := &Consent{api: api, token: token, state: ConsentLoading}
	if token == "" {
		c.state = ConsentErrored
		c.message = "The consent link is invalid: no token was provided"
		return c
	}
	c.state = ConsentReady
	return c
}

// State returns the current flow state.
func (c *Consent) State() ConsentState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Message returns the outcome message shown to the parent.
func (c *Consent) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Approve records a granting decision.
func (c *Consent) Approve(ctx context.Context) (*Result, error) {
	return c.decide(ctx, true)
}

// Reject records a declining decision.
func (c *Consent) Reject(ctx context.Context) (*Result, error) {
	return c.decide(ctx, false)
}

// decide sends the decision. Only the Ready state accepts one; moving to
// Submitting first guarantees a second decision is rejected rather than
// double-sent.
func (c *Consent) decide(ctx context.Context, consentGiven bool) (*Result, error) {
	c.mu.Lock()
	if c.state != ConsentReady {
		state := c.state
		c.mu.Unlock()
		return nil, domain.ErrConflict("no consent decision can be made in state " + string(state))
	}
	c.state = ConsentSubmitting
	token := c.token
	c.mu.Unlock()

	resp, err := c.api.VerifyParentConsent(ctx, token, consentGiven)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = ConsentErrored
		c.message = err.Error()
		return nil, err
	}
	c.state = ConsentSucceeded
	c.message = resp.Message
	return &Result{Message: resp.Message, RedirectAfter: ConsentRedirectDelay}, nil
}
