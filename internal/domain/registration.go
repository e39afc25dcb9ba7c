package domain

// Role identifies what a registrant is signing up as.
type Role string

const (
	RoleClub         Role = "club"
	RoleCoach        Role = "coach"
	RoleAssistant    Role = "assistant"
	RolePlayer       Role = "player"
	RoleParent       Role = "parent"
	RolePrivateCoach Role = "private_coach"
)

// Roles lists every selectable registration role.
var Roles = []Role{RoleClub, RoleCoach, RoleAssistant, RolePlayer, RoleParent, RolePrivateCoach}

// Valid reports whether r is a known registration role.
func (r Role) Valid() bool {
	switch r {
	case RoleClub, RoleCoach, RoleAssistant, RolePlayer, RoleParent, RolePrivateCoach:
		return true
	}
	return false
}

// RequiresInvite reports whether registration under r is invite-driven.
func (r Role) RequiresInvite() bool {
	return r == RoleCoach || r == RoleAssistant
}

// BasicData holds the fields collected in step one for every role.
type BasicData struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ClubRegistration is the payload for registering a new club and its admin.
type ClubRegistration struct {
	BasicData
	Phone       string `json:"phoneNumber,omitempty"`
	ClubName    string `json:"clubName"`
	ClubCity    string `json:"clubCity"`
	ClubAddress string `json:"clubAddress,omitempty"`
	ClubCountry string `json:"clubCountry"`
}

// CoachRegistration is the payload for an invite-driven coach registration.
type CoachRegistration struct {
	BasicData
	Phone      string `json:"phoneNumber,omitempty"`
	InviteCode string `json:"inviteCode"`
}

// AssistantRegistration is the payload for an invite-driven assistant
// registration.
type AssistantRegistration struct {
	BasicData
	Phone      string `json:"phoneNumber,omitempty"`
	InviteCode string `json:"inviteCode"`
}

// PlayerRegistration is the payload for registering a player. Parent fields
// are required when the player is under the consent age.
type PlayerRegistration struct {
	BasicData
	Phone           string `json:"phoneNumber,omitempty"`
	DateOfBirth     string `json:"dateOfBirth"`
	InviteCode      string `json:"inviteCode,omitempty"`
	ParentEmail     string `json:"parentEmail,omitempty"`
	ParentFirstName string `json:"parentFirstName,omitempty"`
	ParentLastName  string `json:"parentLastName,omitempty"`
	ParentPhone     string `json:"parentPhoneNumber,omitempty"`
}

// ParentRegistration is the payload for registering a parent account.
type ParentRegistration struct {
	BasicData
	Phone string `json:"phoneNumber,omitempty"`
}

// PrivateCoachRegistration is the payload for registering an independent
// coach not attached to a club.
type PrivateCoachRegistration struct {
	BasicData
	Phone   string `json:"phoneNumber,omitempty"`
	Country string `json:"country,omitempty"`
	Bio     string `json:"bio,omitempty"`
}

// ConsentDecision is submitted exactly once per consent token.
type ConsentDecision struct {
	Token        string `json:"token"`
	ConsentGiven bool   `json:"consentGiven"`
}
