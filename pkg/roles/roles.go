package roles

// Role is the permission level carried in the token and the users table.
type Role string

const (
	Customer Role = "customer"
	Employee Role = "employee"
	Admin    Role = "admin"
)

// In reports whether r is one of allowed.
func (r Role) In(allowed []Role) bool {
	for _, a := range allowed {
		if a == r {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
