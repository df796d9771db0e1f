package models

type UserState string

const (
	UserActive    UserState = "ACTIVO"
	UserInactive  UserState = "INACTIVO"
	UserSuspended UserState = "SUSPENDIDO"

	UserEntity = "usuario"
)

type User struct {
	ID    int64     `json:"id"`
	Name  string    `json:"nombre"`
	Email string    `json:"email"`
	State UserState `json:"estado"`
}

var ValidUserStates = map[string]bool{
	string(UserActive):    true,
	string(UserInactive):  true,
	string(UserSuspended): true,
}

func IsValidUserState(state string) bool {
	return ValidUserStates[state]
}

// Equal defines user identity by (id, email).
func (u User) Equal(other User) bool {
	return u.ID == other.ID && u.Email == other.Email
}
