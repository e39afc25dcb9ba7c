package workflow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsclub/admincore/internal/domain"
)

type registrarSpy struct {
	mu         sync.Mutex
	calls      int
	lastRole   domain.Role
	lastPlayer domain.PlayerRegistration
	lastClub   domain.ClubRegistration
	resp       *domain.RegistrationResponse
	err        error
	entered    chan struct{}
	release    chan struct{}
}

func newRegistrarSpy() *registrarSpy {
	return &registrarSpy{resp: &domain.RegistrationResponse{Message: "ok"}}
}

func (s *registrarSpy) record(role domain.Role) (*domain.RegistrationResponse, error) {
	s.mu.Lock()
	s.calls++
	s.lastRole = role
	s.mu.Unlock()
	if s.entered != nil {
		close(s.entered)
		<-s.release
	}
	return s.resp, s.err
}

func (s *registrarSpy) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *registrarSpy) RegisterClub(_ context.Context, reg domain.ClubRegistration) (*domain.RegistrationResponse, error) {
	s.mu.Lock()
	s.lastClub = reg
	s.mu.Unlock()
	return s.record(domain.RoleClub)
}

func (s *registrarSpy) RegisterCoach(_ context.Context, _ domain.CoachRegistration) (*domain.RegistrationResponse, error) {
	return s.record(domain.RoleCoach)
}

func (s *registrarSpy) RegisterAssistant(_ context.Context, _ domain.AssistantRegistration) (*domain.RegistrationResponse, error) {
	return s.record(domain.RoleAssistant)
}

func (s *registrarSpy) RegisterPlayer(_ context.Context, reg domain.PlayerRegistration) (*domain.RegistrationResponse, error) {
	s.mu.Lock()
	s.lastPlayer = reg
	s.mu.Unlock()
	return s.record(domain.RolePlayer)
}

func (s *registrarSpy) RegisterParent(_ context.Context, _ domain.ParentRegistration) (*domain.RegistrationResponse, error) {
	return s.record(domain.RoleParent)
}

func (s *registrarSpy) RegisterPrivateCoach(_ context.Context, _ domain.PrivateCoachRegistration) (*domain.RegistrationResponse, error) {
	return s.record(domain.RolePrivateCoach)
}

var validBasics = domain.BasicData{
	Email:     "new.user@sportsclub.sk",
	Password:  "secret1",
	FirstName: "Jana",
	LastName:  "Nováková",
}

func TestRegistration_AdvanceGuards(t *testing.T) {
	tests := []struct {
		name   string
		basics domain.BasicData
		role   domain.Role
	}{
		{name: "missing fields", basics: domain.BasicData{Email: "a@b.sk"}, role: domain.RoleParent},
		{name: "short password", basics: domain.BasicData{Email: "a@b.sk", Password: "abc", FirstName: "A", LastName: "B"}, role: domain.RoleClub},
		{name: "bad email", basics: domain.BasicData{Email: "not-an-email", Password: "secret1", FirstName: "A", LastName: "B"}, role: domain.RoleClub},
		{name: "no role selected", basics: validBasics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := newRegistrarSpy()
			r := NewRegistration(spy)
			require.NoError(t, r.SetBasics(tt.basics))
			if tt.role != "" {
				require.NoError(t, r.SetRole(tt.role))
			}

			err := r.Advance()
			require.Error(t, err)
			assert.Equal(t, PhaseCollectingBasics, r.Phase(), "violation keeps the phase")
			assert.Zero(t, spy.callCount(), "no backend call before submission")
		})
	}
}

func TestRegistration_BackPreservesData(t *testing.T) {
	r := NewRegistration(newRegistrarSpy())
	require.NoError(t, r.SetBasics(validBasics))
	require.NoError(t, r.SetRole(domain.RoleClub))
	require.NoError(t, r.Advance())
	require.NoError(t, r.SetDetails(RoleDetails{ClubName: "FK Martin", ClubCity: "Martin", ClubCountry: "SK"}))

	require.NoError(t, r.Back())
	assert.Equal(t, PhaseCollectingBasics, r.Phase())
	assert.Equal(t, validBasics, r.Basics())
	assert.Equal(t, "FK Martin", r.Details().ClubName, "step-two data survives Back")

	require.NoError(t, r.Advance())
	assert.Equal(t, PhaseCollectingRoleDetails, r.Phase())
}

func TestRegistration_MinorPlayerNeedsParentFields(t *testing.T) {
	spy := newRegistrarSpy()
	r := NewRegistration(spy)
	r.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, r.SetBasics(validBasics))
	require.NoError(t, r.SetRole(domain.RolePlayer))
	require.NoError(t, r.Advance())
	require.NoError(t, r.SetDetails(RoleDetails{DateOfBirth: "2012-03-15"}))

	_, err := r.Submit(context.Background())
	require.Error(t, err)
	assert.Zero(t, spy.callCount(), "guard failure issues no backend call")
	assert.Equal(t, PhaseCollectingRoleDetails, r.Phase())

	require.NoError(t, r.SetDetails(RoleDetails{
		DateOfBirth:     "2012-03-15",
		ParentEmail:     "parent@sportsclub.sk",
		ParentFirstName: "Petra",
		ParentLastName:  "Nováková",
	}))
	res, err := r.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, spy.callCount())
	assert.Equal(t, domain.RolePlayer, spy.lastRole)
	assert.Equal(t, "parent@sportsclub.sk", spy.lastPlayer.ParentEmail)
	assert.Equal(t, SuccessRedirectDelay, res.RedirectAfter)
	assert.Equal(t, PhaseSucceeded, r.Phase())
}

func TestRegistration_AdultPlayerSkipsParentFields(t *testing.T) {
	spy := newRegistrarSpy()
	r := NewRegistration(spy)
	r.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, r.SetBasics(validBasics))
	require.NoError(t, r.SetRole(domain.RolePlayer))
	require.NoError(t, r.Advance())
	require.NoError(t, r.SetDetails(RoleDetails{DateOfBirth: "2000-03-15"}))

	_, err := r.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, spy.callCount())
}

func TestRegistration_SubmitFailureRevertsWithVerbatimError(t *testing.T) {
	spy := newRegistrarSpy()
	spy.resp = nil
	spy.err = domain.ErrRequestFailed("email already registered")
	r := NewRegistration(spy)
	require.NoError(t, r.SetBasics(validBasics))
	require.NoError(t, r.SetRole(domain.RoleParent))
	require.NoError(t, r.Advance())

	_, err := r.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "email already registered")
	assert.Equal(t, PhaseCollectingRoleDetails, r.Phase(), "failure reverts to role details")
	assert.Equal(t, validBasics, r.Basics(), "entered data survives a failed submission")
	assert.ErrorContains(t, r.LastError(), "email already registered")

	// A corrected resubmission goes through.
	spy.err = nil
	spy.resp = &domain.RegistrationResponse{Message: "ok"}
	_, err = r.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, spy.callCount())
}

func TestRegistration_RejectsConcurrentSubmit(t *testing.T) {
	spy := newRegistrarSpy()
	spy.entered = make(chan struct{})
	spy.release = make(chan struct{})
	r := NewRegistration(spy)
	require.NoError(t, r.SetBasics(validBasics))
	require.NoError(t, r.SetRole(domain.RoleParent))
	require.NoError(t, r.Advance())

	done := make(chan error, 1)
	go func() {
		_, err := r.Submit(context.Background())
		done <- err
	}()

	<-spy.entered
	assert.Equal(t, PhaseSubmitting, r.Phase())
	_, err := r.Submit(context.Background())
	require.Error(t, err, "second submit while in flight is rejected")

	close(spy.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, spy.callCount())
}

func TestRegistration_InviteLocksEmailAndRole(t *testing.T) {
	spy := newRegistrarSpy()
	r := NewRegistration(spy)
	inv := domain.Invite{
		InviteCode: "INV-7",
		InviteType: "coach",
		Email:      "trener@sportsclub.sk",
	}
	require.NoError(t, r.ApplyInvite(inv))
	assert.True(t, r.InviteLocked())
	assert.Equal(t, domain.RoleCoach, r.Role())
	assert.Equal(t, "trener@sportsclub.sk", r.Basics().Email)

	err := r.SetRole(domain.RolePlayer)
	require.Error(t, err, "role is pinned by the invite")

	err = r.SetBasics(domain.BasicData{Email: "other@x.sk", Password: "secret1", FirstName: "A", LastName: "B"})
	require.Error(t, err, "email is pinned by the invite")

	require.NoError(t, r.SetBasics(domain.BasicData{
		Email: "trener@sportsclub.sk", Password: "secret1", FirstName: "A", LastName: "B",
	}))
	require.NoError(t, r.Advance())

	// The invite code rides along even if the caller's details omit it.
	require.NoError(t, r.SetDetails(RoleDetails{Phone: "+421900000000"}))
	assert.Equal(t, "INV-7", r.Details().InviteCode)

	_, err = r.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCoach, spy.lastRole)
}

func TestRegistration_ClubPayloadCarriesDetails(t *testing.T) {
	spy := newRegistrarSpy()
	r := NewRegistration(spy)
	require.NoError(t, r.SetBasics(validBasics))
	require.NoError(t, r.SetRole(domain.RoleClub))
	require.NoError(t, r.Advance())

	// Missing club fields never reach the backend.
	_, err := r.Submit(context.Background())
	require.Error(t, err)
	assert.Zero(t, spy.callCount())

	require.NoError(t, r.SetDetails(RoleDetails{
		ClubName: "FK Martin", ClubCity: "Martin", ClubAddress: "Hlavná 1", ClubCountry: "SK",
	}))
	_, err = r.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FK Martin", spy.lastClub.ClubName)
	assert.Equal(t, "Martin", spy.lastClub.ClubCity)
	assert.Equal(t, "SK", spy.lastClub.ClubCountry)
}

func TestRegistration_NotEditableAfterSuccess(t *testing.T) {
	spy := newRegistrarSpy()
	r := NewRegistration(spy)
	require.NoError(t, r.SetBasics(validBasics))
	require.NoError(t, r.SetRole(domain.RoleParent))
	require.NoError(t, r.Advance())
	_, err := r.Submit(context.Background())
	require.NoError(t, err)

	require.Error(t, r.SetBasics(validBasics))
	require.Error(t, r.SetDetails(RoleDetails{}))
	_, err = r.Submit(context.Background())
	require.Error(t, err)
}
