package models

import (
	"time"
)

// User is the public profile of an account. Credentials never appear here.
type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Name             string    `json:"name"`
	Surname          string    `json:"surname"`
	ProfileImg       string    `json:"profileImg,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// UserMinimal is the subset of a profile embedded in reply views.
type UserMinimal struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	ProfileImg string `json:"profileImg,omitempty"`
}

func (u User) Minimal() UserMinimal {
	return UserMinimal{
		ID:         u.ID,
		Username:   u.Username,
		Name:       u.Name,
		Surname:    u.Surname,
		ProfileImg: u.ProfileImg,
	}
}
