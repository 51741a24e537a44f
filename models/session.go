package models

// Session is a point-in-time snapshot of the client authentication state.
//
// IsAuthenticated is derived from Token alone. User is fetched after the
// token is known; Loading stays true until that fetch resolves.
type Session struct {
	// Token is the opaque bearer credential, empty when logged out.
	Token string

	// User is the resolved account, nil until fetched or after logout.
	User *User

	// Loading is true while the current user is being resolved.
	Loading bool

	// Error holds the last user-facing auth error message.
	Error string
}

// IsAuthenticated reports whether a credential is present.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// AuthResponse is the body returned by the login and register endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// UserResponse wraps the user returned by GET and PUT /auth/user.
type UserResponse struct {
	User *User `json:"user"`
}

// ErrorResponse is the error envelope used by every backend endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
}
