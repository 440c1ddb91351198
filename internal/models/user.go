package models

import "time"

// User represents a registered account
type User struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // bcrypt hash (never in JSON)
	Email        string    `json:"email"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest represents registration request payload
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// MissingFields lists the required registration fields that are absent.
func (r *RegisterRequest) MissingFields() []string {
	var missing []string
	if r.Username == "" {
		missing = append(missing, "username")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	if r.Firstname == "" {
		missing = append(missing, "firstname")
	}
	if r.Lastname == "" {
		missing = append(missing, "lastname")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	return missing
}

// LoginRequest represents login request payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}
