package graduate

const (
	RoleAdmin    = "admin"
	RoleGraduate = "graduate"
)

// Caller identifies who invokes a use case, as resolved from the access token.
type Caller struct {
	ID   string
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
