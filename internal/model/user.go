package model

// User is a backend user record. Read-only in this layer.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TeamID       *int   `json:"team_id"`
	DepartmentID *int   `json:"department_id"`
}

// Team is a backend team record. A team may not belong to a department.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DepartmentID *int   `json:"department_id"`
}
