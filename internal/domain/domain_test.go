package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Validator Tests ---

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
		errMsg  string
	}{
		{"valid email", "user@example.com", false, ""},
		{"valid email with dots", "first.last@example.co.uk", false, ""},
		{"valid email with plus", "user+tag@example.com", false, ""},
		{"empty string", "", true, "email is required"},
		{"no at sign", "userexample.com", true, "invalid email format"},
		{"no domain", "user@", true, "invalid email format"},
		{"no user", "@example.com", true, "invalid email format"},
		{"no tld", "user@example", true, "invalid email format"},
		{"spaces", "user @example.com", true, "invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"six chars", "secret", false},
		{"long", "a-much-longer-password", false},
		{"five chars", "short", true},
		{"three chars", "abc", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "at least 6 characters")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateBasicData(t *testing.T) {
	valid := BasicData{
		Email:     "anna@example.com",
		Password:  "secret1",
		FirstName: "Anna",
		LastName:  "Novakova",
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateBasicData(valid))
	})

	t.Run("missing field", func(t *testing.T) {
		b := valid
		b.LastName = ""
		err := ValidateBasicData(b)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required fields")
	})

	t.Run("short password", func(t *testing.T) {
		b := valid
		b.Password = "abc"
		err := ValidateBasicData(b)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("bad email", func(t *testing.T) {
		b := valid
		b.Email = "not-an-email"
		require.Error(t, ValidateBasicData(b))
	})
}

// --- Age Tests ---

func TestAge_ExactBirthdayBoundary(t *testing.T) {
	// Birth date exactly N years before "today" yields N on the day and
	// N-1 the day before, for every N.
	for _, n := range []int{1, 15, 16, 17, 40} {
		now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
		dob := now.AddDate(-n, 0, 0)

		assert.Equal(t, n, Age(dob, now), "on the birthday, N=%d", n)
		assert.Equal(t, n-1, Age(dob, now.AddDate(0, 0, -1)), "day before the birthday, N=%d", n)
	}
}

func TestAge(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		now  string
		want int
	}{
		{"birthday later this year", "2010-12-31", "2026-06-15", 15},
		{"birthday earlier this year", "2010-01-02", "2026-06-15", 16},
		{"birthday today", "2010-06-15", "2026-06-15", 16},
		{"birthday tomorrow", "2010-06-16", "2026-06-15", 15},
		{"same month earlier day", "2010-06-01", "2026-06-15", 16},
		{"newborn", "2026-06-01", "2026-06-15", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dob, err := time.Parse("2006-01-02", tt.dob)
			require.NoError(t, err)
			now, err := time.Parse("2006-01-02", tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Age(dob, now))
		})
	}
}

func TestNeedsParentConsent(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("under 16", func(t *testing.T) {
		dob := now.AddDate(-15, 0, 0)
		assert.True(t, NeedsParentConsent(dob, now))
	})

	t.Run("exactly 16 today", func(t *testing.T) {
		dob := now.AddDate(-16, 0, 0)
		assert.False(t, NeedsParentConsent(dob, now))
	})

	t.Run("16 tomorrow", func(t *testing.T) {
		dob := now.AddDate(-16, 0, 1)
		assert.True(t, NeedsParentConsent(dob, now))
	})
}

// --- Role-specific Validation Tests ---

func TestValidateClubRegistration(t *testing.T) {
	valid := ClubRegistration{
		ClubName:    "FK Martin",
		ClubCity:    "Martin",
		ClubCountry: "SK",
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateClubRegistration(valid))
	})

	for _, missing := range []string{"name", "city", "country"} {
		t.Run("missing "+missing, func(t *testing.T) {
			r := valid
			switch missing {
			case "name":
				r.ClubName = ""
			case "city":
				r.ClubCity = ""
			case "country":
				r.ClubCountry = ""
			}
			require.Error(t, ValidateClubRegistration(r))
		})
	}
}

func TestValidateInviteRoles(t *testing.T) {
	t.Run("coach without invite code", func(t *testing.T) {
		err := ValidateCoachRegistration(CoachRegistration{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invite code")
	})

	t.Run("coach with invite code", func(t *testing.T) {
		require.NoError(t, ValidateCoachRegistration(CoachRegistration{InviteCode: "INV-1"}))
	})

	t.Run("assistant without invite code", func(t *testing.T) {
		require.Error(t, ValidateAssistantRegistration(AssistantRegistration{}))
	})
}

func TestValidatePlayerRegistration(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	adult := PlayerRegistration{DateOfBirth: "2000-01-01"}
	minor := PlayerRegistration{DateOfBirth: "2015-01-01"}

	t.Run("adult needs no parent fields", func(t *testing.T) {
		require.NoError(t, ValidatePlayerRegistration(adult, now))
	})

	t.Run("missing date of birth", func(t *testing.T) {
		err := ValidatePlayerRegistration(PlayerRegistration{}, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "date of birth is required")
	})

	t.Run("minor without parent fields", func(t *testing.T) {
		err := ValidatePlayerRegistration(minor, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parent")
	})

	t.Run("minor with partial parent fields", func(t *testing.T) {
		r := minor
		r.ParentEmail = "parent@example.com"
		r.ParentFirstName = "Jana"
		require.Error(t, ValidatePlayerRegistration(r, now))
	})

	t.Run("minor with full parent fields", func(t *testing.T) {
		r := minor
		r.ParentEmail = "parent@example.com"
		r.ParentFirstName = "Jana"
		r.ParentLastName = "Novakova"
		require.NoError(t, ValidatePlayerRegistration(r, now))
	})

	t.Run("minor with invalid parent email", func(t *testing.T) {
		r := minor
		r.ParentEmail = "not-an-email"
		r.ParentFirstName = "Jana"
		r.ParentLastName = "Novakova"
		err := ValidatePlayerRegistration(r, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parent email")
	})

	t.Run("turns 16 today needs no parent fields", func(t *testing.T) {
		r := PlayerRegistration{DateOfBirth: "2010-06-15"}
		require.NoError(t, ValidatePlayerRegistration(r, now))
	})

	t.Run("turns 16 tomorrow needs parent fields", func(t *testing.T) {
		r := PlayerRegistration{DateOfBirth: "2010-06-16"}
		require.Error(t, ValidatePlayerRegistration(r, now))
	})
}

func TestRole(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, Role("trainer").Valid())
	assert.False(t, Role("").Valid())

	assert.True(t, RoleCoach.RequiresInvite())
	assert.True(t, RoleAssistant.RequiresInvite())
	assert.False(t, RolePlayer.RequiresInvite())
	assert.False(t, RoleClub.RequiresInvite())
}

// --- AppError Tests ---

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := ErrValidation("bad input")
		assert.Equal(t, "VALIDATION_ERROR: bad input", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrUnavailable("request failed", cause)
		assert.Contains(t, err.Error(), "UNAVAILABLE")
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ErrInternal("wrapped", cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorFactories(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantCode string
	}{
		{"ErrValidation", ErrValidation("bad"), "VALIDATION_ERROR"},
		{"ErrUnauthorized", ErrUnauthorized("no token"), "UNAUTHORIZED"},
		{"ErrNotFound", ErrNotFound("invite", "INV-404"), "NOT_FOUND"},
		{"ErrConflict", ErrConflict("email taken"), "CONFLICT"},
		{"ErrRequestFailed", ErrRequestFailed("server says no"), "REQUEST_FAILED"},
		{"ErrUnavailable", ErrUnavailable("network down", nil), "UNAVAILABLE"},
		{"ErrInternal", ErrInternal("oops", nil), "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}
