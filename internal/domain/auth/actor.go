package auth

// Role comes from the external auth provider and is trusted as given.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Actor is the acting user threaded explicitly through every gated
// operation, so an approval replay can elevate the role without touching
// ambient state.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// Elevated returns the same actor with admin rights, used when replaying an
// approved request so the original mutation proceeds instead of re-deferring.
func (a Actor) Elevated() Actor { return Actor{ID: a.ID, Role: RoleAdmin} }
