package domain

// User is the domain model for planner accounts. PasswordHash is empty for
// admin-created users that never signed up; such accounts cannot log in.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}
