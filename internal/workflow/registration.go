// Package workflow holds the multi-step client flows: age-gated
// registration, parental consent and email verification. Each flow is an
// explicit state machine; transitions are guarded, and no guard failure
// ever reaches the network.
package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sportsclub/admincore/internal/domain"
)

// Phase is a registration workflow state.
type Phase string

const (
	PhaseCollectingBasics      Phase = "collecting_basics"
	PhaseCollectingRoleDetails Phase = "collecting_role_details"
	PhaseSubmitting            Phase = "submitting"
	PhaseSucceeded             Phase = "succeeded"
)

// SuccessRedirectDelay is the grace period a caller should wait after a
// successful registration before navigating away.
const SuccessRedirectDelay = 3 * time.Second

// Registrar is the slice of the API client the registration flow needs.
type Registrar interface {
	RegisterClub(ctx context.Context, reg domain.ClubRegistration) (*domain.RegistrationResponse, error)
	RegisterCoach(ctx context.Context, reg domain.CoachRegistration) (*domain.RegistrationResponse, error)
	RegisterAssistant(ctx context.Context, reg domain.AssistantRegistration) (*domain.RegistrationResponse, error)
	RegisterPlayer(ctx context.Context, reg domain.PlayerRegistration) (*domain.RegistrationResponse, error)
	RegisterParent(ctx context.Context, reg domain.ParentRegistration) (*domain.RegistrationResponse, error)
	RegisterPrivateCoach(ctx context.Context, reg domain.PrivateCoachRegistration) (*domain.RegistrationResponse, error)
}

// RoleDetails carries the step-two fields. Which of them matter depends on
// the selected role; validation happens at Submit.
type RoleDetails struct {
	Phone           string
	ClubName        string
	ClubCity        string
	ClubAddress     string
	ClubCountry     string
	InviteCode      string
	DateOfBirth     string
	ParentEmail     string
	ParentFirstName string
	ParentLastName  string
	ParentPhone     string
	Country         string
	Bio             string
}

// Result is returned by a successful Submit.
type Result struct {
	Message               string
	RequiresParentConsent bool
	ClubID                int64
	RedirectAfter         time.Duration
}

// Registration drives the two-step registration flow. All entered data
// survives Back and failed submissions; only a successful submission is
// terminal.
type Registration struct {
	mu  sync.Mutex
	api Registrar
	now func() time.Time

	phase   Phase
	role    domain.Role
	basics  domain.BasicData
	details RoleDetails

	invite  *domain.Invite
	lastErr error
}

// NewRegistration starts a flow in the basics-collection phase with no role
// selected.
func NewRegistration(api Registrar) *Registration {
	return &Registration{
		api:   api,
		now:   time.Now,
		phase: PhaseCollectingBasics,
	}
}

// Phase returns the current workflow phase.
func (r *Registration) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// LastError returns the error from the most recent failed submission.
func (r *Registration) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Basics returns the entered step-one data.
func (r *Registration) Basics() domain.BasicData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.basics
}

// Details returns the entered step-two data.
func (r *Registration) Details() RoleDetails {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.details
}

// Role returns the selected registration role.
func (r *Registration) Role() domain.Role {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.role
}

// InviteLocked reports whether an invite pins the email and role.
func (r *Registration) InviteLocked() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invite != nil
}

// SetBasics records the step-one fields. When an invite is applied the
// email is pinned to the invite's address and cannot be changed.
func (r *Registration) SetBasics(b domain.BasicData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == PhaseSubmitting || r.phase == PhaseSucceeded {
		return domain.ErrConflict("registration is no longer editable")
	}
	if r.invite != nil && b.Email != r.invite.Email {
		return domain.ErrValidation("email is fixed by the invite")
	}
	r.basics = b
	return nil
}

// SetRole selects the registration role. Rejected when an invite pins the
// role to its type.
func (r *Registration) SetRole(role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !role.Valid() {
		return domain.ErrValidation(fmt.Sprintf("unknown role %q", role))
	}
	if r.invite != nil && role != inviteRole(r.invite) {
		return domain.ErrValidation("role is fixed by the invite")
	}
	r.role = role
	return nil
}

// SetDetails records the step-two fields.
func (r *Registration) SetDetails(d RoleDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == PhaseSubmitting || r.phase == PhaseSucceeded {
		return domain.ErrConflict("registration is no longer editable")
	}
	if r.invite != nil {
		d.InviteCode = r.invite.InviteCode
	}
	r.details = d
	return nil
}

// ApplyInvite pre-fills the flow from an invite: email and role are locked
// to the invite's values and the invite code is carried into the payload.
func (r *Registration) ApplyInvite(inv domain.Invite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	role := inviteRole(&inv)
	if !role.Valid() {
		return domain.ErrValidation(fmt.Sprintf("unsupported invite type %q", inv.InviteType))
	}
	r.invite = &inv
	r.role = role
	r.basics.Email = inv.Email
	r.details.InviteCode = inv.InviteCode
	return nil
}

func inviteRole(inv *domain.Invite) domain.Role {
	switch inv.InviteType {
	case "coach":
		return domain.RoleCoach
	case "assistant":
		return domain.RoleAssistant
	case "player":
		return domain.RolePlayer
	}
	return domain.Role(inv.InviteType)
}

// Advance moves from basics collection to role-detail collection. Basic
// validation failures keep the phase and surface the violation.
func (r *Registration) Advance() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseCollectingBasics {
		return domain.ErrConflict(fmt.Sprintf("cannot advance from phase %q", r.phase))
	}
	if err := domain.ValidateBasicData(r.basics); err != nil {
		return domain.ErrValidation(err.Error())
	}
	if !r.role.Valid() {
		return domain.ErrValidation("a registration role must be selected")
	}
	r.phase = PhaseCollectingRoleDetails
	return nil
}

// Back returns to basics collection. Always allowed from role-detail
// collection; entered data is preserved.
func (r *Registration) Back() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseCollectingRoleDetails {
		return domain.ErrConflict(fmt.Sprintf("cannot go back from phase %q", r.phase))
	}
	r.phase = PhaseCollectingBasics
	return nil
}

// Submit validates the role payload and dispatches it. Validation failures
// issue no backend call. A backend failure reverts to role-detail
// collection with the verbatim error; while a submission is in flight a
// second Submit is rejected.
func (r *Registration) Submit(ctx context.Context) (*Result, error) {
	r.mu.Lock()
	if r.phase == PhaseSubmitting {
		r.mu.Unlock()
		return nil, domain.ErrConflict("a submission is already in flight")
	}
	if r.phase != PhaseCollectingRoleDetails {
		r.mu.Unlock()
		return nil, domain.ErrConflict(fmt.Sprintf("cannot submit from phase %q", r.phase))
	}

	role, basics, details := r.role, r.basics, r.details
	if err := validateRolePayload(role, basics, details, r.now()); err != nil {
		r.mu.Unlock()
		return nil, domain.ErrValidation(err.Error())
	}

	r.phase = PhaseSubmitting
	r.lastErr = nil
	r.mu.Unlock()

	resp, err := r.dispatch(ctx, role, basics, details)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.phase = PhaseCollectingRoleDetails
		r.lastErr = err
		return nil, err
	}
	r.phase = PhaseSucceeded
	return &Result{
		Message:               resp.Message,
		RequiresParentConsent: resp.RequiresParentConsent,
		ClubID:                resp.ClubID,
		RedirectAfter:         SuccessRedirectDelay,
	}, nil
}

func validateRolePayload(role domain.Role, basics domain.BasicData, d RoleDetails, now time.Time) error {
	switch role {
	case domain.RoleClub:
		return domain.ValidateClubRegistration(domain.ClubRegistration{
			BasicData: basics, ClubName: d.ClubName, ClubCity: d.ClubCity, ClubCountry: d.ClubCountry,
		})
	case domain.RoleCoach:
		return domain.ValidateCoachRegistration(domain.CoachRegistration{BasicData: basics, InviteCode: d.InviteCode})
	case domain.RoleAssistant:
		return domain.ValidateAssistantRegistration(domain.AssistantRegistration{BasicData: basics, InviteCode: d.InviteCode})
	case domain.RolePlayer:
		return domain.ValidatePlayerRegistration(domain.PlayerRegistration{
			BasicData:       basics,
			DateOfBirth:     d.DateOfBirth,
			ParentEmail:     d.ParentEmail,
			ParentFirstName: d.ParentFirstName,
			ParentLastName:  d.ParentLastName,
		}, now)
	case domain.RoleParent, domain.RolePrivateCoach:
		return nil
	}
	return fmt.Errorf("unknown role %q", role)
}

func (r *Registration) dispatch(ctx context.Context, role domain.Role, basics domain.BasicData, d RoleDetails) (*domain.RegistrationResponse, error) {
	switch role {
	case domain.RoleClub:
		return r.api.RegisterClub(ctx, domain.ClubRegistration{
			BasicData:   basics,
			Phone:       d.Phone,
			ClubName:    d.ClubName,
			ClubCity:    d.ClubCity,
			ClubAddress: d.ClubAddress,
			ClubCountry: d.ClubCountry,
		})
	case domain.RoleCoach:
		return r.api.RegisterCoach(ctx, domain.CoachRegistration{
			BasicData: basics, Phone: d.Phone, InviteCode: d.InviteCode,
		})
	case domain.RoleAssistant:
		return r.api.RegisterAssistant(ctx, domain.AssistantRegistration{
			BasicData: basics, Phone: d.Phone, InviteCode: d.InviteCode,
		})
	case domain.RolePlayer:
		return r.api.RegisterPlayer(ctx, domain.PlayerRegistration{
			BasicData:       basics,
			Phone:           d.Phone,
			DateOfBirth:     d.DateOfBirth,
			InviteCode:      d.InviteCode,
			ParentEmail:     d.ParentEmail,
			ParentFirstName: d.ParentFirstName,
			ParentLastName:  d.ParentLastName,
			ParentPhone:     d.ParentPhone,
		})
	case domain.RoleParent:
		return r.api.RegisterParent(ctx, domain.ParentRegistration{BasicData: basics, Phone: d.Phone})
	case domain.RolePrivateCoach:
		return r.api.RegisterPrivateCoach(ctx, domain.PrivateCoachRegistration{
			BasicData: basics, Phone: d.Phone, Country: d.Country, Bio: d.Bio,
		})
	}
	return nil, domain.ErrValidation(fmt.Sprintf("unknown role %q", role))
}
