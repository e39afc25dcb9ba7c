package domain

import (
	"fmt"
	"regexp"
	"time"
)

// ConsentAge is the age below which a player registration needs parent
// details and an explicit parental consent decision.
const ConsentAge = 16

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// ValidateBasicData checks the step-one fields shared by every role.
func ValidateBasicData(b BasicData) error {
	if b.Email == "" || b.Password == "" || b.FirstName == "" || b.LastName == "" {
		return fmt.Errorf("all required fields must be filled in")
	}
	if err := ValidateEmail(b.Email); err != nil {
		return err
	}
	return ValidatePassword(b.Password)
}

// Age returns the exact calendar age at now for the given date of birth:
// whole years elapsed, minus one when the birthday has not yet occurred
// this year. Not floor(days/365).
func Age(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

// NeedsParentConsent reports whether a player born on dateOfBirth is under
// the consent age at now. Pure function, recomputed on every call.
func NeedsParentConsent(dateOfBirth, now time.Time) bool {
	return Age(dateOfBirth, now) < ConsentAge
}

// ParseDateOfBirth parses the wire format for dates of birth (YYYY-MM-DD).
func ParseDateOfBirth(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date of birth is required")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date of birth: %w", err)
	}
	return t, nil
}

// ValidateClubRegistration checks the club role-specific fields.
func ValidateClubRegistration(r ClubRegistration) error {
	if r.ClubName == "" || r.ClubCity == "" || r.ClubCountry == "" {
		return fmt.Errorf("club name, city and country are required")
	}
	return nil
}

// ValidateCoachRegistration checks the coach role-specific fields.
func ValidateCoachRegistration(r CoachRegistration) error {
	if r.InviteCode == "" {
		return fmt.Errorf("an invite code is required to register as a coach")
	}
	return nil
}

// ValidateAssistantRegistration checks the assistant role-specific fields.
func ValidateAssistantRegistration(r AssistantRegistration) error {
	if r.InviteCode == "" {
		return fmt.Errorf("an invite code is required to register as an assistant")
	}
	return nil
}

// ValidatePlayerRegistration checks the player role-specific fields,
// including the parent details required for players under the consent age.
func ValidatePlayerRegistration(r PlayerRegistration, now time.Time) error {
	dob, err := ParseDateOfBirth(r.DateOfBirth)
	if err != nil {
		return err
	}
	if NeedsParentConsent(dob, now) {
		if r.ParentEmail == "" || r.ParentFirstName == "" || r.ParentLastName == "" {
			return fmt.Errorf("parent email, first name and last name are required for players under %d", ConsentAge)
		}
		if err := ValidateEmail(r.ParentEmail); err != nil {
			return fmt.Errorf("parent email: %w", err)
		}
	}
	return nil
}
