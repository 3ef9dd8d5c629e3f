package model

// Role identifies which side of the application an identity belongs
// to.  Exactly two roles exist; there is deliberately no third value
// and no way to represent one.
type Role string

const (
	RoleStudent  Role = "student"  // searches and books study rooms
	RoleAssigner Role = "assigner" // monitors occupancy and allocations
)

// Valid reports whether r is one of the two defined roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAssigner
}

// User is the authenticated identity for a session.  Role is fixed at
// signup and never changes for the lifetime of the account; the
// email/role suffix pairing is enforced only at sign-in, sign-up and
// password reset, never re-checked afterwards.
//
// Fields:
//  Name       - display name of the user.
//  Email      - unique, lowercased email address.
//  Role       - student or assigner.
//  ProfilePic - optional URL of a profile picture.
//  StudentID  - optional campus identifier, set for students only.
type User struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	ProfilePic string `json:"profile_pic,omitempty"`
	StudentID  string `json:"student_id,omitempty"`
}

// ProfileUpdate carries a partial profile edit.  Nil fields are left
// untouched when merged into an existing User; Role and Email are
// intentionally absent because neither may change after signup.
type ProfileUpdate struct {
	Name       *string `json:"name,omitempty"`
	ProfilePic *string `json:"profile_pic,omitempty"`
	StudentID  *string `json:"student_id,omitempty"`
}

// Apply merges the update into u, field by field.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.ProfilePic != nil {
		u.ProfilePic = *p.ProfilePic
	}
	if p.StudentID != nil {
		u.StudentID = *p.StudentID
	}
}
