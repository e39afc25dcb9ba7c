package workflow

import (
	"context"
	"sync"

	"github.com/sportsclub/admincore/internal/domain"
)

// VerifyState is an email-verification flow state.
type VerifyState string

const (
	VerifyPending   VerifyState = "pending"
	VerifyVerifying VerifyState = "verifying"
	VerifySucceeded VerifyState = "succeeded"
	VerifyErrored   VerifyState = "errored"
)

// VerifierAPI is the slice of the API client the verification flow needs.
type VerifierAPI interface {
	VerifyEmail(ctx context.Context, token string) (*domain.MessageResponse, error)
	ResendVerification(ctx context.Context, email string) (*domain.MessageResponse, error)
}

// EmailVerification drives the verification link flow: one verification
// attempt per token, with a resend escape hatch on failure.
type EmailVerification struct {
	mu        sync.Mutex
	api       VerifierAPI
	token     string
	state     VerifyState
	message   string
	resending bool
}

// NewEmailVerification starts a flow for the token from the verification
// link.
func NewEmailVerification(api VerifierAPI, token string) *EmailVerification {
	return &EmailVerification{api: api, token: token, state: VerifyPending}
}

// State returns the current flow state.
func (v *EmailVerification) State() VerifyState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Message returns the outcome message from the last transition.
func (v *EmailVerification) Message() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.message
}

// Verify submits the token. A missing token errors without a network call;
// the attempt runs once, a repeat call in any settled state is rejected.
func (v *EmailVerification) Verify(ctx context.Context) (*Result, error) {
	v.mu.Lock()
	if v.state != VerifyPending {
		state := v.state
		v.mu.Unlock()
		return nil, domain.ErrConflict("verification cannot run in state " + string(state))
	}
	if v.token == "" {
		v.state = VerifyErrored
		v.message = "The verification link is invalid: no token was provided"
		msg := v.message
		v.mu.Unlock()
		return nil, domain.ErrValidation(msg)
	}
	v.state = VerifyVerifying
	token := v.token
	v.mu.Unlock()

	resp, err := v.api.VerifyEmail(ctx, token)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = VerifyErrored
		v.message = err.Error()
		return nil, err
	}
	v.state = VerifySucceeded
	v.message = resp.Message
	return &Result{Message: resp.Message, RedirectAfter: SuccessRedirectDelay}, nil
}

// Resend asks for a fresh verification email. Only available after a failed
// verification, and never issues overlapping resends.
func (v *EmailVerification) Resend(ctx context.Context, email string) (*domain.MessageResponse, error) {
	v.mu.Lock()
	if v.state != VerifyErrored {
		state := v.state
		v.mu.Unlock()
		return nil, domain.ErrConflict("resend is only available after a failed verification, not in state " + string(state))
	}
	if v.resending {
		v.mu.Unlock()
		return nil, domain.ErrConflict("a resend is already in flight")
	}
	if err := domain.ValidateEmail(email); err != nil {
		v.mu.Unlock()
		return nil, domain.ErrValidation(err.Error())
	}
	v.resending = true
	v.mu.Unlock()

	resp, err := v.api.ResendVerification(ctx, email)

	v.mu.Lock()
	v.resending = false
	v.mu.Unlock()
	return resp, err
}
