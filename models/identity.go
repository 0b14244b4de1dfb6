package models

type Role string

// Caller roles carried in the verified token.
const (
	RoleResident  Role = "RESIDENT"
	RoleEmployee  Role = "EMPLOYEE"
	RoleService   Role = "SERVICE"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
	RoleAnalyst   Role = "ANALYST"
)

type UserStatus string

// Account statuses.
const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
	UserStatusDeleted UserStatus = "DELETED"
)

// Identity is the verified caller bundle extracted from the bearer token.
// The organizational uids are only present for employees and services.
type Identity struct {
	UID           string
	Role          Role
	Status        UserStatus
	ServiceUID    string
	DepartmentUID string
}

// IsModerator reports whether the caller may see moderation-scoped data.
func (i Identity) IsModerator() bool {
	return i.Role == RoleModerator || i.Role == RoleAdmin
}
