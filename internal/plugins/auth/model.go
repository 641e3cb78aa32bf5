// Package auth implements MindBase accounts and the session manager: user
// registration, login/logout, the current-user pointer, and profile edits.
//
// Passwords are stored and compared in plain text. That is the documented
// design of this system (a single-profile, self-hosted companion whose
// whole store lives on the owner's machine); hardening authentication is an
// explicit non-goal.
package auth

// User is a registered MindBase account. JSON field names are part of the
// backup interchange format and must not change.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Bio      string `json:"bio,omitempty"`

	// JoinedAt is the ISO-8601 registration timestamp.
	JoinedAt string `json:"joinedAt"`

	// LastLogin is the ISO-8601 timestamp of the most recent login, empty
	// until the first login.
	LastLogin string `json:"lastLogin,omitempty"`
}

// Redacted returns a copy safe to send to clients: the password is blanked
// and, being omitempty, disappears from the JSON encoding.
func (u User) Redacted() User {
	u.Password = ""
	return u
}

// RegisterInput carries validated registration data into the service.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries login credentials into the service.
type LoginInput struct {
	Email    string
	Password string
}

// --- HTTP request/response shapes ---

// RegisterRequest is the POST /api/auth/register body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the PUT /api/me body. Email and password edits
// are deliberately not exposed here.
type UpdateProfileRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}
