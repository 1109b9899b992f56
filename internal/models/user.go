package models

// UserRole represents the persona a user acts as in the portal.
type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleParent  UserRole = "PARENT"
	RoleTeacher UserRole = "TEACHER"
)

// Valid reports whether the role is one of the known personas.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleParent, RoleTeacher:
		return true
	default:
		return false
	}
}

// User is a portal profile. Level and XP are only set for gamified (student) profiles.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Role       UserRole   `json:"role"`
	Avatar     string     `json:"avatar"`
	Level      *int       `json:"level,omitempty"`
	XP         *int       `json:"xp,omitempty"`
	Email      string     `json:"email,omitempty"`
	Grade      string     `json:"grade,omitempty"`
	Provenance Provenance `json:"provenance"`
}

// ActingUser is the user currently selected in the client. It is a selection, not an
// authenticated identity.
type ActingUser struct {
	ID   string
	Role UserRole
}
