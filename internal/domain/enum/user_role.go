package enum

// UserRole distinguishes counter attendants from administrators.
// Admins authenticate with a password; attendants log in by code alone.
type UserRole string

const (
	RoleAttendant UserRole = "attendant"
	RoleAdmin     UserRole = "admin"
)

// Valid reports whether the role is known.
func (r UserRole) Valid() bool {
	return r == RoleAttendant || r == RoleAdmin
}

func (r UserRole) String() string {
	return string(r)
}
