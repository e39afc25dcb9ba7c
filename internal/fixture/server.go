// Package fixture is a small HTTP backend that serves the mock client's
// fixtures over the real wire contract. It exists so the REST client and
// the flows built on it can run against a live server in tests and local
// development without the production backend.
package fixture

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sportsclub/admincore/internal/client"
	"github.com/sportsclub/admincore/internal/domain"
)

// Seeded admin credentials for local development.
const (
	AdminEmail    = "admin@sportsclub.sk"
	AdminPassword = "admin123"
)

// Server serves the fixture backend. All data comes from the mock client,
// which keeps the served shapes identical to what callers see in mock mode.
type Server struct {
	logger    *slog.Logger
	tokens    *TokenManager
	api       client.Client
	adminHash []byte
}

// New creates a fixture server signing tokens with the given secret.
func New(jwtSecret string, logger *slog.Logger) (*Server, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Server{
		logger:    logger,
		tokens:    NewTokenManager(jwtSecret, 8*time.Hour),
		api:       client.NewMock(),
		adminHash: hash,
	}, nil
}

// Router builds the HTTP routes with the standard middleware chain.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery(s.logger))
	r.Use(RequestID)
	r.Use(RequestLogger(s.logger))
	r.Use(CORS)
	r.Use(JSONContentType)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.login)
		r.Post("/register/club", registerHandler(func(ctx context.Context, req domain.ClubRegistration) (*domain.RegistrationResponse, error) {
			return s.api.RegisterClub(ctx, req)
		}))
		r.Post("/register/coach", registerHandler(func(ctx context.Context, req domain.CoachRegistration) (*domain.RegistrationResponse, error) {
			return s.api.RegisterCoach(ctx, req)
		}))
		r.Post("/register/assistant", registerHandler(func(ctx context.Context, req domain.AssistantRegistration) (*domain.RegistrationResponse, error) {
			return s.api.RegisterAssistant(ctx, req)
		}))
		r.Post("/register/player", registerHandler(func(ctx context.Context, req domain.PlayerRegistration) (*domain.RegistrationResponse, error) {
			return s.api.RegisterPlayer(ctx, req)
		}))
		r.Post("/register/parent", registerHandler(func(ctx context.Context, req domain.ParentRegistration) (*domain.RegistrationResponse, error) {
			return s.api.RegisterParent(ctx, req)
		}))
		r.Post("/register/private-coach", registerHandler(func(ctx context.Context, req domain.PrivateCoachRegistration) (*domain.RegistrationResponse, error) {
			return s.api.RegisterPrivateCoach(ctx, req)
		}))
		r.Post("/parent-consent", s.parentConsent)
		r.Post("/verify-email", s.verifyEmail)
		r.Post("/resend-verification", s.resendVerification)
	})

	r.Get("/players", s.getPlayers)
	r.Get("/players/{id}", s.getPlayer)
	r.Get("/teams", s.getTeams)
	r.Get("/trainings", s.getTrainings)
	r.Post("/trainings", s.createTraining)
	r.Get("/matches", s.getMatches)
	r.Get("/tests/results", s.getTestResults)
	r.Get("/clubs", s.getClubs)
	r.Post("/clubs", s.createClub)
	r.Get("/invites/{code}", s.getInvite)

	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireAdmin(s.tokens))
		r.Get("/registrations/pending", s.pendingRegistrations)
		r.Post("/registrations/{id}/approve", s.approveRegistration)
		r.Post("/registrations/{id}/reject", s.rejectRegistration)
	})

	return r
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email != AdminEmail || bcrypt.CompareHashAndPassword(s.adminHash, []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	user := domain.User{ID: 1, Email: AdminEmail, FirstName: "Admin", LastName: "User", Role: "admin"}
	token, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		s.logger.Error("token generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, domain.AuthResponse{Token: token, User: user})
}

// registerHandler decodes a role payload and relays it to the mock client.
func registerHandler[T any](register func(context.Context, T) (*domain.RegistrationResponse, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		resp, err := register(r.Context(), req)
		if err != nil {
			respondError(w, http.StatusBadRequest, errMessage(err))
			return
		}
		respondJSON(w, http.StatusCreated, resp)
	}
}

func (s *Server) parentConsent(w http.ResponseWriter, r *http.Request) {
	var req domain.ConsentDecision
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := s.api.VerifyParentConsent(r.Context(), req.Token, req.ConsentGiven)
	if err != nil {
		respondError(w, http.StatusBadRequest, errMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := s.api.VerifyEmail(r.Context(), req.Token)
	if err != nil {
		respondError(w, http.StatusBadRequest, errMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) resendVerification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := s.api.ResendVerification(r.Context(), req.Email)
	if err != nil {
		respondError(w, http.StatusBadRequest, errMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) getPlayers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.api.GetPlayers(r.Context(), nil)
	s.reply(w, resp, err)
}

func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid player id")
		return
	}
	resp, err := s.api.GetPlayer(r.Context(), id)
	s.reply(w, resp, err)
}

func (s *Server) getTeams(w http.ResponseWriter, r *http.Request) {
	resp, err := s.api.GetTeams(r.Context())
	s.reply(w, resp, err)
}

func (s *Server) getTrainings(w http.ResponseWriter, r *http.Request) {
	resp, err := s.api.GetTrainings(r.Context(), nil)
	s.reply(w, resp, err)
}

func (s *Server) createTraining(w http.ResponseWriter, r *http.Request) {
	var req domain.NewTraining
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := s.api.CreateTraining(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusBadRequest, errMessage(err))
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

func (s *Server) getMatches(w http.ResponseWriter, r *http.Request) {
	resp, err := s.api.GetMatches(r.Context(), nil)
	s.reply(w, resp, err)
}

func (s *Server) getTestResults(w http.ResponseWriter, r *http.Request) {
	resp, err := s.api.GetTestResults(r.Context(), nil)
	s.reply(w, resp, err)
}

func (s *Server) getClubs(w http.ResponseWriter, r *http.Request) {
	resp, err := s.api.GetClubs(r.Context())
	s.reply(w, resp, err)
}

func (s *Server) createClub(w http.ResponseWriter, r *http.Request) {
	var req domain.NewClub
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := s.api.CreateClub(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusBadRequest, errMessage(err))
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

func (s *Server) getInvite(w http.ResponseWriter, r *http.Request) {
	resp, err := s.api.GetInvite(r.Context(), chi.URLParam(r, "code"))
	s.reply(w, resp, err)
}

func (s *Server) pendingRegistrations(w http.ResponseWriter, r *http.Request) {
	resp, err := s.api.GetPendingRegistrations(r.Context())
	s.reply(w, resp, err)
}

func (s *Server) approveRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	resp, err := s.api.ApproveRegistration(r.Context(), id)
	s.reply(w, resp, err)
}

func (s *Server) rejectRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	resp, err := s.api.RejectRegistration(r.Context(), id)
	s.reply(w, resp, err)
}

func (s *Server) reply(w http.ResponseWriter, data any, err error) {
	if err != nil {
		respondError(w, http.StatusBadRequest, errMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, data)
}
