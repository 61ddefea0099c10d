package domain

import (
	"strings"
	"unicode/utf8"
)

// Credentials is the login form and the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// SignupDetails is the signup form as typed by the user.
type SignupDetails struct {
	FullName string `json:"fullName" validate:"required,fullname"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// Request converts the form into the wire body, splitting the full name.
func (d SignupDetails) Request() SignupRequest {
	first, last := SplitFullName(d.FullName)
	return SignupRequest{
		Email:     d.Email,
		Password:  d.Password,
		FirstName: first,
		LastName:  last,
	}
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AuthUser is the user record returned by the auth endpoints.
type AuthUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	User         *AuthUser `json:"user"`
}

// Session is the per-browser login state. Only AccessToken is required.
type Session struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	User         *AuthUser `json:"user,omitempty"`
}

// SessionFrom builds the session persisted after a successful login or signup.
func SessionFrom(resp *AuthResponse) Session {
	return Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         resp.User,
	}
}

// SplitFullName trims the name, splits it on runs of whitespace and returns
// the first token as the first name and the rest, joined by single spaces,
// as the last name.
func SplitFullName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// validFullName requires at least two tokens, a first token of two or more
// characters, and at least two characters across the remaining tokens
// counted without separators.
func validFullName(fullName string) bool {
	parts := strings.Fields(fullName)
	if len(parts) < 2 {
		return false
	}
	return utf8.RuneCountInString(parts[0]) >= 2 &&
		utf8.RuneCountInString(strings.Join(parts[1:], "")) >= 2
}
