package session

// Role is the closed set of roles the Petalth API assigns to an account.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleOwner Role = "OWNER"
	RoleVet   Role = "VET"

	// Older backend revisions labelled pet owners USER instead of OWNER.
	roleLegacyUser Role = "USER"
)

// Record is the authenticated identity as returned by POST /auth/login and
// POST /auth/register. Field names follow the remote API's JSON payload.
type Record struct {
	ID      int64  `json:"id"`
	Token   string `json:"token"`
	Email   string `json:"email"`
	Name    string `json:"nombre"`
	Role    Role   `json:"rol"`
	Message string `json:"mensaje"`
}

// Valid reports whether the record can act as a session. A record is either
// fully usable or treated as absent; there is no partial state.
func (r *Record) Valid() bool {
	return r != nil && r.ID != 0 && r.Token != ""
}
