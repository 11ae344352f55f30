package academic

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/academia/backend/internal/domain/academic"
)

// ErrEmailTaken indicates a person with the same email already exists
var ErrEmailTaken = errors.New("academic: email already registered")

// PersonService implements the person use cases. People are purely
// local records; remote LMS users are only created lazily during
// matriculation.
type PersonService struct {
	people domain.PersonRepository
	logger *zap.Logger
}

// NewPersonService creates a new PersonService
func NewPersonService(people domain.PersonRepository, logger *zap.Logger) *PersonService {
	return &PersonService{people: people, logger: logger.Named("person-service")}
}

// Create registers a new person
func (s *PersonService) Create(ctx context.Context, input CreatePersonInput) (*domain.Person, error) {
	existing, err := s.people.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrPersonNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	person, err := domain.NewPerson(input.FirstName, input.LastName, input.Email)
	if err != nil {
		return nil, err
	}
	person.Country = input.Country
	person.City = input.City
	person.Phone = input.Phone
	person.Institution = input.Institution
	person.Profession = input.Profession

	if err := s.people.Save(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// Get returns a person by id
func (s *PersonService) Get(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	return s.people.FindByID(ctx, id)
}
