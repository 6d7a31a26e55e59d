package models

// Principal is the verified identity carried by an access token.
type Principal struct {
	ID   int    `json:"id"`
	Role string `json:"role"`
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
