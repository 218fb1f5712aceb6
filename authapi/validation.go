package authapi

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator provides client-side validation for registration payloads so
// obviously bad requests never reach the backend.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegistration performs comprehensive validation of a registration payload
func (v *Validator) ValidateRegistration(data RegistrationData) error {
	if err := v.ValidateEmail(data.Email); err != nil {
		return err
	}
	if err := ValidatePasswordStrength(data.Password); err != nil {
		return err
	}
	if strings.TrimSpace(data.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(data.LastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if data.UserType != UserTypeAdmin && data.UserType != UserTypeUser {
		return fmt.Errorf("user_type must be 'ADMIN' or 'USER'")
	}
	return nil
}

// ValidateEmail checks the shape of an email address
func (v *Validator) ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidatePasswordStrength checks if password meets security requirements:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
	)

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}
