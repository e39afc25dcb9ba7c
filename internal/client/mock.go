package client

import (
	"context"
	"time"

	"github.com/sportsclub/admincore/internal/domain"
)

// Mock serves every capability from canned fixtures. No network, no shared
// mutable state; responses are shape-identical to the REST implementation.
type Mock struct {
	now func() time.Time
}

// NewMock creates the fixture-backed client.
func NewMock() *Mock {
	return &Mock{now: time.Now}
}

var _ Client = (*Mock)(nil)

// Login issues the fixed mock token. The user identity echoes the given
// email with the admin fixture identity.
func (m *Mock) Login(_ context.Context, email, _ string) (*domain.AuthResponse, error) {
	return &domain.AuthResponse{
		Token: MockToken,
		User:  domain.User{ID: 1, Email: email, FirstName: "Admin", LastName: "User", Role: "admin"},
	}, nil
}

func (m *Mock) GetPlayers(_ context.Context, _ Params) (*domain.PlayerList, error) {
	return fixturePlayerList(), nil
}

func (m *Mock) GetPlayer(_ context.Context, id int64) (*domain.Player, error) {
	return fixturePlayer(id), nil
}

func (m *Mock) GetTeams(_ context.Context) (*domain.TeamList, error) {
	return fixtureTeamList(), nil
}

func (m *Mock) GetTrainings(_ context.Context, _ Params) (*domain.TrainingList, error) {
	return fixtureTrainingList(), nil
}

func (m *Mock) CreateTraining(_ context.Context, _ domain.NewTraining) (*domain.CreatedResponse, error) {
	return &domain.CreatedResponse{ID: 100, Message: "Training created (mock)"}, nil
}

func (m *Mock) GetMatches(_ context.Context, _ Params) (*domain.MatchList, error) {
	return fixtureMatchList(), nil
}

func (m *Mock) GetTestResults(_ context.Context, _ Params) (*domain.TestResultList, error) {
	return fixtureTestResultList(), nil
}

func (m *Mock) GetDashboardStats(_ context.Context) (*domain.DashboardStats, error) {
	return fixtureDashboardStats(), nil
}

func (m *Mock) GetClubs(_ context.Context) (*domain.ClubList, error) {
	return fixtureClubList(), nil
}

func (m *Mock) CreateClub(_ context.Context, _ domain.NewClub) (*domain.CreatedResponse, error) {
	return &domain.CreatedResponse{ID: 10, Message: "Club created (mock)"}, nil
}

func (m *Mock) RegisterClub(_ context.Context, _ domain.ClubRegistration) (*domain.RegistrationResponse, error) {
	return &domain.RegistrationResponse{Message: "Registration successful, check your email to verify the account", ClubID: 10}, nil
}

func (m *Mock) RegisterCoach(_ context.Context, _ domain.CoachRegistration) (*domain.RegistrationResponse, error) {
	return &domain.RegistrationResponse{Message: "Registration successful, check your email to verify the account"}, nil
}

func (m *Mock) RegisterAssistant(_ context.Context, _ domain.AssistantRegistration) (*domain.RegistrationResponse, error) {
	return &domain.RegistrationResponse{Message: "Registration successful, check your email to verify the account"}, nil
}

// RegisterPlayer reports whether the registration awaits parental consent,
// derived from the submitted date of birth the same way the backend does.
func (m *Mock) RegisterPlayer(_ context.Context, reg domain.PlayerRegistration) (*domain.RegistrationResponse, error) {
	dob, err := domain.ParseDateOfBirth(reg.DateOfBirth)
	if err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	return &domain.RegistrationResponse{
		Message:               "Registration successful, check your email to verify the account",
		RequiresParentConsent: domain.NeedsParentConsent(dob, m.now()),
	}, nil
}

func (m *Mock) RegisterParent(_ context.Context, _ domain.ParentRegistration) (*domain.RegistrationResponse, error) {
	return &domain.RegistrationResponse{Message: "Registration successful, check your email to verify the account"}, nil
}

func (m *Mock) RegisterPrivateCoach(_ context.Context, _ domain.PrivateCoachRegistration) (*domain.RegistrationResponse, error) {
	return &domain.RegistrationResponse{Message: "Registration successful, check your email to verify the account"}, nil
}

func (m *Mock) GetInvite(_ context.Context, code string) (*domain.InviteResponse, error) {
	return fixtureInvite(code), nil
}

func (m *Mock) VerifyParentConsent(_ context.Context, token string, consentGiven bool) (*domain.MessageResponse, error) {
	if token == "" {
		return nil, domain.ErrValidation("consent token is required")
	}
	if consentGiven {
		return &domain.MessageResponse{Message: "Consent granted, the player's account has been activated"}, nil
	}
	return &domain.MessageResponse{Message: "Consent declined, the player's account stays inactive"}, nil
}

func (m *Mock) VerifyEmail(_ context.Context, token string) (*domain.MessageResponse, error) {
	if token == "" {
		return nil, domain.ErrValidation("verification token is required")
	}
	return &domain.MessageResponse{Message: "Email verified successfully"}, nil
}

func (m *Mock) ResendVerification(_ context.Context, email string) (*domain.MessageResponse, error) {
	if err := domain.ValidateEmail(email); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	return &domain.MessageResponse{Message: "Verification email sent"}, nil
}

func (m *Mock) GetPendingRegistrations(_ context.Context) (*domain.PendingUserList, error) {
	return fixturePendingUserList(), nil
}

func (m *Mock) ApproveRegistration(_ context.Context, _ int64) (*domain.MessageResponse, error) {
	return &domain.MessageResponse{Message: "Registration approved"}, nil
}

func (m *Mock) RejectRegistration(_ context.Context, _ int64) (*domain.MessageResponse, error) {
	return &domain.MessageResponse{Message: "Registration rejected"}, nil
}
