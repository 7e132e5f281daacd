package model

// Scope is the breadth of organizational membership used to select
// visible tasks.
type Scope string

const (
	ScopeTeam       Scope = "team"
	ScopeDepartment Scope = "department"
)

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	return s == ScopeTeam || s == ScopeDepartment
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
