package session

// Role is the storefront role carried by a session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Session is the current authenticated identity. Absence of a session is
// represented by the (Session, bool) pair returned from the Gate, never by
// a zero-value Session leaking into consumers.
type Session struct {
	Name string `json:"nombre"`
	Role Role   `json:"role"`
	City string `json:"ciudad,omitempty"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Account is the auth service's representation of a user, returned from
// sign-up and sign-in.
type Account struct {
	Name string `json:"nombre"`
	Role Role   `json:"role"`
	City string `json:"ciudad,omitempty"`
}
