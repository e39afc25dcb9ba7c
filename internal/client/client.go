// Package client is the API facade for the sports-club backend. One method
// per backend capability; two implementations share the interface — Mock
// returns deterministic fixtures, REST talks to the live backend. Which one
// a caller gets is decided once, at construction, from the persisted mode
// flag, so no caller ever branches on mode.
package client

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/sportsclub/admincore/internal/domain"
	"github.com/sportsclub/admincore/internal/session"
	"github.com/sportsclub/admincore/internal/store"
)

// Client is the backend API surface.
type Client interface {
	// Auth
	Login(ctx context.Context, email, password string) (*domain.AuthResponse, error)

	// Roster
	GetPlayers(ctx context.Context, params Params) (*domain.PlayerList, error)
	GetPlayer(ctx context.Context, id int64) (*domain.Player, error)
	GetTeams(ctx context.Context) (*domain.TeamList, error)

	// Schedule
	GetTrainings(ctx context.Context, params Params) (*domain.TrainingList, error)
	CreateTraining(ctx context.Context, training domain.NewTraining) (*domain.CreatedResponse, error)
	GetMatches(ctx context.Context, params Params) (*domain.MatchList, error)
	GetTestResults(ctx context.Context, params Params) (*domain.TestResultList, error)
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// Clubs
	GetClubs(ctx context.Context) (*domain.ClubList, error)
	CreateClub(ctx context.Context, club domain.NewClub) (*domain.CreatedResponse, error)

	// Registration
	RegisterClub(ctx context.Context, reg domain.ClubRegistration) (*domain.RegistrationResponse, error)
	RegisterCoach(ctx context.Context, reg domain.CoachRegistration) (*domain.RegistrationResponse, error)
	RegisterAssistant(ctx context.Context, reg domain.AssistantRegistration) (*domain.RegistrationResponse, error)
	RegisterPlayer(ctx context.Context, reg domain.PlayerRegistration) (*domain.RegistrationResponse, error)
	RegisterParent(ctx context.Context, reg domain.ParentRegistration) (*domain.RegistrationResponse, error)
	RegisterPrivateCoach(ctx context.Context, reg domain.PrivateCoachRegistration) (*domain.RegistrationResponse, error)

	// Invites and verification
	GetInvite(ctx context.Context, code string) (*domain.InviteResponse, error)
	VerifyParentConsent(ctx context.Context, token string, consentGiven bool) (*domain.MessageResponse, error)
	VerifyEmail(ctx context.Context, token string) (*domain.MessageResponse, error)
	ResendVerification(ctx context.Context, email string) (*domain.MessageResponse, error)

	// Moderation
	GetPendingRegistrations(ctx context.Context) (*domain.PendingUserList, error)
	ApproveRegistration(ctx context.Context, userID int64) (*domain.MessageResponse, error)
	RejectRegistration(ctx context.Context, userID int64) (*domain.MessageResponse, error)
}

// New selects the implementation for the current mode: fixtures in mock
// mode, HTTP otherwise.
func New(baseURL string, mode *store.ModeStore, holder *session.Holder, logger *slog.Logger) Client {
	if mode.Mock() {
		return NewMock()
	}
	return NewREST(baseURL, holder, logger)
}

// Param is a single query-string pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered set of query parameters. Order is preserved as
// given; pairs with empty values are skipped. No array or nested-object
// encoding — no caller needs it.
type Params []Param

// Encode renders the parameters as a query string without the leading "?".
func (p Params) Encode() string {
	var b strings.Builder
	for _, kv := range p {
		if kv.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}
