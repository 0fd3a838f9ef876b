package models

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"` // only "admin" may use the admin routes
}

const RoleAdmin = "admin"
