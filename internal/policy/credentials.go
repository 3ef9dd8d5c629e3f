package policy

import (
	"strings"

	"github.com/studyspaces/classroom-reservation/internal/model"
)

// Role-specific email suffixes.  An account's email must carry the
// suffix of its role at sign-in, sign-up and password reset.
const (
	StudentSuffix  = "@university.edu"
	AssignerSuffix = "@admin.edu"
)

// ValidationError describes a rejected form submission.  It is shown
// inline next to the form and is never fatal.
type ValidationError struct {
	Field   string // offending field, empty when the whole form is at fault
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// suffixFor returns the required email suffix for a role.
func suffixFor(role model.Role) string {
	if role == model.RoleAssigner {
		return AssignerSuffix
	}
	return StudentSuffix
}

// hasRoleSuffix checks the email suffix case-insensitively.
func hasRoleSuffix(email string, role model.Role) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), suffixFor(role))
}

// ValidateSignIn checks a sign-in form.  Checks run in display order:
// required fields first, then the role suffix.
func ValidateSignIn(email, password string, role model.Role) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return validationErr("", "Please fill in all fields to continue.")
	}
	if role == model.RoleStudent && !hasRoleSuffix(email, role) {
		return validationErr("email", "Please use your university email (@university.edu) to sign in.")
	}
	if role == model.RoleAssigner && !hasRoleSuffix(email, role) {
		return validationErr("email", "Please use your admin email (@admin.edu) to access the dashboard.")
	}
	return nil
}

// ValidateSignUp checks a sign-up form.  Order matters for the
// user-facing message: required fields, then the role suffix, then
// password confirmation.
func ValidateSignUp(name, email, password, confirm string, role model.Role) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" ||
		password == "" || confirm == "" {
		return validationErr("", "All fields are required")
	}
	if role == model.RoleStudent && !hasRoleSuffix(email, role) {
		return validationErr("email", "Please use your university email to sign up.")
	}
	if role == model.RoleAssigner && !hasRoleSuffix(email, role) {
		return validationErr("email", "Please use your admin email for an assigner account.")
	}
	if password != confirm {
		return validationErr("confirm_password", "Passwords do not match")
	}
	return nil
}

// ValidatePasswordReset checks a forgot-password form.
func ValidatePasswordReset(email string, role model.Role) error {
	if strings.TrimSpace(email) == "" {
		return validationErr("email", "Please enter your email address.")
	}
	if role == model.RoleStudent && !hasRoleSuffix(email, role) {
		return validationErr("email", "Please use your university email address.")
	}
	if role == model.RoleAssigner && !hasRoleSuffix(email, role) {
		return validationErr("email", "Please use your admin email address.")
	}
	return nil
}
