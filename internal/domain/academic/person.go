package academic

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPersonNotFound     = errors.New("academic: person not found")
	ErrPersonInvalidEmail = errors.New("academic: invalid person email")
	ErrPersonInvalidName  = errors.New("academic: invalid person name")
)

// Person represents a student or prospective student.
type Person struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Country     string
	City        string
	Phone       string
	Institution string
	Profession  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPerson creates a new person
func NewPerson(firstName, lastName, email string) (*Person, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrPersonInvalidName
	}
	if email == "" {
		return nil, ErrPersonInvalidEmail
	}

	now := time.Now()
	return &Person{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FullName returns the person's full name
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PersonRepository defines the persistence port for people
type PersonRepository interface {
	// FindByID finds a person by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Person, error)

	// FindByEmail finds a person by email
	FindByEmail(ctx context.Context, email string) (*Person, error)

	// Save creates or updates a person
	Save(ctx context.Context, person *Person) error
}
