package models

// Role is the authorization role of a backend user.
type Role string

const (
	RoleEditor       Role = "EDITOR"
	RoleCountryAdmin Role = "COUNTRY_ADMIN"
	RoleSuperAdmin   Role = "SUPER_ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEditor, RoleCountryAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User is the profile returned by /me and /admin/users.
type User struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	CountryID string   `json:"countryId,omitempty"`
	IsActive  bool     `json:"isActive"`
	Country   *Country `json:"country,omitempty"`
}

// Session is the client's view of the current identity.
//
// IsAuthenticated is true iff both User and Token are present.
type Session struct {
	User            *User  `json:"user"`
	Token           string `json:"token,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// NewSession returns an authenticated session for user and token.
func NewSession(user User, token string) Session {
	return Session{User: &user, Token: token, IsAuthenticated: true}
}

// Consistent reports whether the IsAuthenticated flag agrees with the
// presence of both User and Token.
func (s Session) Consistent() bool {
	complete := s.User != nil && s.Token != ""
	return s.IsAuthenticated == complete
}

// Clone returns a deep copy so callers cannot mutate store-owned state.
func (s Session) Clone() Session {
	if s.User != nil {
		u := *s.User
		if u.Country != nil {
			c := *u.Country
			u.Country = &c
		}
		s.User = &u
	}
	return s
}

// HasRole reports whether the session is authenticated with role r.
func (s Session) HasRole(r Role) bool {
	return s.IsAuthenticated && s.User != nil && s.User.Role == r
}
