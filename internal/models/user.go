package models

// User is the authenticated principal carried in admin tokens.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

const RoleAdmin = "admin"
