package domain

// Entity shapes mirror the backend JSON schema field-for-field. The mock
// fixtures and the REST decoder share these types, which is what keeps
// mode switching invisible to callers.

// User is the authenticated user identity returned by login.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// TeamRef is the denormalized team reference embedded in a player row.
type TeamRef struct {
	Name string `json:"name"`
}

// Player is a roster entry with denormalized display fields.
type Player struct {
	ID           int64    `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	JerseyNumber int      `json:"jerseyNumber"`
	Position     string   `json:"position"`
	Team         *TeamRef `json:"team,omitempty"`
}

// Team is a club team.
type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	AgeGroup    string `json:"ageGroup"`
	PlayerCount int    `json:"playerCount"`
}

// Training is a scheduled or completed training session.
type Training struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	Location      string `json:"location"`
	Status        string `json:"status"`
	ExerciseCount int    `json:"exerciseCount"`
}

// Match is a scheduled or completed match.
type Match struct {
	ID        int64  `json:"id"`
	Opponent  string `json:"opponent"`
	MatchDate string `json:"matchDate"`
	Result    string `json:"result"`
	Status    string `json:"status"`
}

// NameRef is a denormalized display-name reference.
type NameRef struct {
	Name string `json:"name"`
}

// TestResult is a single performance-test measurement.
type TestResult struct {
	ID       int64   `json:"id"`
	Player   NameRef `json:"player"`
	Test     NameRef `json:"test"`
	Value    string  `json:"value"`
	Unit     string  `json:"unit"`
	TestDate string  `json:"testDate"`
}

// Club is a registered sports club.
type Club struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Invite pre-authorizes a registration of a specific type for a specific
// email address.
type Invite struct {
	ID          int64  `json:"id"`
	InviteCode  string `json:"inviteCode"`
	InviteType  string `json:"inviteType"`
	Email       string `json:"email"`
	ClubID      int64  `json:"clubId,omitempty"`
	ClubName    string `json:"clubName,omitempty"`
	InviterName string `json:"inviterName,omitempty"`
	ExpiresAt   string `json:"expiresAt"`
	Status      string `json:"status"`
}

// PendingUser is a registration awaiting moderation.
type PendingUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// DashboardStats is the aggregate summary shown on the dashboard.
type DashboardStats struct {
	TotalPlayers      int `json:"totalPlayers"`
	TotalTeams        int `json:"totalTeams"`
	UpcomingTrainings int `json:"upcomingTrainings"`
	UpcomingMatches   int `json:"upcomingMatches"`
	RecentTests       int `json:"recentTests"`
}

// List envelopes. Every list endpoint returns {total, <items>}.

type PlayerList struct {
	Total   int      `json:"total"`
	Players []Player `json:"players"`
}

type TeamList struct {
	Total int    `json:"total"`
	Teams []Team `json:"teams"`
}

type TrainingList struct {
	Total     int        `json:"total"`
	Trainings []Training `json:"trainings"`
}

type MatchList struct {
	Total   int     `json:"total"`
	Matches []Match `json:"matches"`
}

type TestResultList struct {
	Total   int          `json:"total"`
	Results []TestResult `json:"results"`
}

type ClubList struct {
	Total int    `json:"total"`
	Clubs []Club `json:"clubs"`
}

type PendingUserList struct {
	Users []PendingUser `json:"users"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MessageResponse is the generic acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse acknowledges a created record.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// RegistrationResponse acknowledges a registration submission.
type RegistrationResponse struct {
	Message               string `json:"message"`
	RequiresParentConsent bool   `json:"requiresParentConsent,omitempty"`
	ClubID                int64  `json:"clubId,omitempty"`
}

// InviteResponse wraps an invite lookup.
type InviteResponse struct {
	Invite Invite `json:"invite"`
}

// NewTraining is the payload for creating a training session.
type NewTraining struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
	TeamID   int64  `json:"teamId,omitempty"`
}

// NewClub is the payload for creating a club.
type NewClub struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Address string `json:"address,omitempty"`
}
