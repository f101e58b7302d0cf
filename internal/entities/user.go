package entities

type UserRoleType string

const (
	RoleUser  UserRoleType = "user"
	RoleRider UserRoleType = "rider"
	RoleAdmin UserRoleType = "admin"
)

func (t UserRoleType) String() string {
	return string(t)
}
