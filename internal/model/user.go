package model

// User is a registered account. The persisted "password" field holds the
// bcrypt hash, never the plaintext. Users double as the assignee directory:
// a task may only reference registered usernames.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
}
