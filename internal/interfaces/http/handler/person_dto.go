package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/academia/backend/internal/domain/academic"
)

// PersonResponse represents a person in API responses
type PersonResponse struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Country     string    `json:"country,omitempty"`
	City        string    `json:"city,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Institution string    `json:"institution,omitempty"`
	Profession  string    `json:"profession,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PersonResponseFromDomain converts a domain person to a response
func PersonResponseFromDomain(person *academic.Person) PersonResponse {
	return PersonResponse{
		ID:          person.ID,
		FirstName:   person.FirstName,
		LastName:    person.LastName,
		Email:       person.Email,
		Country:     person.Country,
		City:        person.City,
		Phone:       person.Phone,
		Institution: person.Institution,
		Profession:  person.Profession,
		CreatedAt:   person.CreatedAt,
		UpdatedAt:   person.UpdatedAt,
	}
}
