package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sportsclub/admincore/internal/domain"
	"github.com/sportsclub/admincore/internal/session"
)

// TokenSource provides the current bearer token, or "" when there is none.
type TokenSource interface {
	Token() string
}

// REST talks to the live backend over HTTP. Every method goes through the
// shared request primitive, which attaches the bearer token and collapses
// transport failures, decode failures and server rejections into the single
// error channel callers expect.
type REST struct {
	baseURL string
	tokens  TokenSource
	logger  *slog.Logger
	client  *http.Client
}

// NewREST creates the HTTP-backed client.
func NewREST(baseURL string, holder *session.Holder, logger *slog.Logger) *REST {
	return NewRESTWithTokenSource(baseURL, holder, logger)
}

// NewRESTWithTokenSource creates the HTTP-backed client with an arbitrary
// token source.
func NewRESTWithTokenSource(baseURL string, tokens TokenSource, logger *slog.Logger) *REST {
	return &REST{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		logger:  logger,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

var _ Client = (*REST)(nil)

// do is the shared request primitive. It never retries and never recovers
// an error on the caller's behalf; it logs and propagates.
func (c *REST) do(ctx context.Context, method, path string, params Params, body, out any) error {
	url := c.baseURL + path
	if q := params.Encode(); q != "" {
		url += "?" + q
	}

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return domain.ErrInternal("encode request body", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return domain.ErrInternal("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "method", method, "path", path, "error", err)
		return domain.ErrUnavailable("API request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "API request failed"
		var serverErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&serverErr); err == nil && serverErr.Error != "" {
			message = serverErr.Error
		}
		c.logger.Error("api request rejected", "method", method, "path", path, "status", resp.StatusCode, "message", message)
		return domain.ErrRequestFailed(message)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.logger.Error("api response decode failed", "method", method, "path", path, "error", err)
			return domain.ErrUnavailable("decode API response", err)
		}
	}
	return nil
}

func (c *REST) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) GetPlayers(ctx context.Context, params Params) (*domain.PlayerList, error) {
	var out domain.PlayerList
	if err := c.do(ctx, http.MethodGet, "/players", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) GetPlayer(ctx context.Context, id int64) (*domain.Player, error) {
	var out domain.Player
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/players/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) GetTeams(ctx context.Context) (*domain.TeamList, error) {
	var out domain.TeamList
	if err := c.do(ctx, http.MethodGet, "/teams", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) GetTrainings(ctx context.Context, params Params) (*domain.TrainingList, error) {
	var out domain.TrainingList
	if err := c.do(ctx, http.MethodGet, "/trainings", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) CreateTraining(ctx context.Context, training domain.NewTraining) (*domain.CreatedResponse, error) {
	var out domain.CreatedResponse
	if err := c.do(ctx, http.MethodPost, "/trainings", nil, training, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) GetMatches(ctx context.Context, params Params) (*domain.MatchList, error) {
	var out domain.MatchList
	if err := c.do(ctx, http.MethodGet, "/matches", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) GetTestResults(ctx context.Context, params Params) (*domain.TestResultList, error) {
	var out domain.TestResultList
	if err := c.do(ctx, http.MethodGet, "/tests/results", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDashboardStats is not a single backend call: the four underlying
// queries run concurrently and the totals are folded into one summary.
// All-or-nothing on purpose — a partial dashboard would silently mix fresh
// and missing numbers, so any sub-fetch failure fails the whole aggregate.
func (c *REST) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var (
		players   *domain.PlayerList
		teams     *domain.TeamList
		trainings *domain.TrainingList
		matches   *domain.MatchList
	)

	scheduled := Params{{Key: "status", Value: "scheduled"}, {Key: "limit", Value: "10"}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = c.GetPlayers(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = c.GetTeams(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		trainings, err = c.GetTrainings(gctx, scheduled)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = c.GetMatches(gctx, scheduled)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalPlayers:      players.Total,
		TotalTeams:        teams.Total,
		UpcomingTrainings: trainings.Total,
		UpcomingMatches:   matches.Total,
		RecentTests:       0,
	}, nil
}

func (c *REST) GetClubs(ctx context.Context) (*domain.ClubList, error) {
	var out domain.ClubList
	if err := c.do(ctx, http.MethodGet, "/clubs", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) CreateClub(ctx context.Context, club domain.NewClub) (*domain.CreatedResponse, error) {
	var out domain.CreatedResponse
	if err := c.do(ctx, http.MethodPost, "/clubs", nil, club, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) RegisterClub(ctx context.Context, reg domain.ClubRegistration) (*domain.RegistrationResponse, error) {
	return c.register(ctx, "/auth/register/club", reg)
}

func (c *REST) RegisterCoach(ctx context.Context, reg domain.CoachRegistration) (*domain.RegistrationResponse, error) {
	return c.register(ctx, "/auth/register/coach", reg)
}

func (c *REST) RegisterAssistant(ctx context.Context, reg domain.AssistantRegistration) (*domain.RegistrationResponse, error) {
	return c.register(ctx, "/auth/register/assistant", reg)
}

func (c *REST) RegisterPlayer(ctx context.Context, reg domain.PlayerRegistration) (*domain.RegistrationResponse, error) {
	return c.register(ctx, "/auth/register/player", reg)
}

func (c *REST) RegisterParent(ctx context.Context, reg domain.ParentRegistration) (*domain.RegistrationResponse, error) {
	return c.register(ctx, "/auth/register/parent", reg)
}

func (c *REST) RegisterPrivateCoach(ctx context.Context, reg domain.PrivateCoachRegistration) (*domain.RegistrationResponse, error) {
	return c.register(ctx, "/auth/register/private-coach", reg)
}

func (c *REST) register(ctx context.Context, path string, body any) (*domain.RegistrationResponse, error) {
	var out domain.RegistrationResponse
	if err := c.do(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) GetInvite(ctx context.Context, code string) (*domain.InviteResponse, error) {
	var out domain.InviteResponse
	if err := c.do(ctx, http.MethodGet, "/invites/"+code, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) VerifyParentConsent(ctx context.Context, token string, consentGiven bool) (*domain.MessageResponse, error) {
	body := domain.ConsentDecision{Token: token, ConsentGiven: consentGiven}
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/parent-consent", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) VerifyEmail(ctx context.Context, token string) (*domain.MessageResponse, error) {
	body := map[string]string{"token": token}
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-email", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) ResendVerification(ctx context.Context, email string) (*domain.MessageResponse, error) {
	body := map[string]string{"email": email}
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/resend-verification", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) GetPendingRegistrations(ctx context.Context) (*domain.PendingUserList, error) {
	var out domain.PendingUserList
	if err := c.do(ctx, http.MethodGet, "/admin/registrations/pending", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) ApproveRegistration(ctx context.Context, userID int64) (*domain.MessageResponse, error) {
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/registrations/%d/approve", userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *REST) RejectRegistration(ctx context.Context, userID int64) (*domain.MessageResponse, error) {
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/registrations/%d/reject", userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
