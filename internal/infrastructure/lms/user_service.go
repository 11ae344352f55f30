package lms

import (
	"context"
	"fmt"
	"net/url"

	"github.com/academia/backend/internal/domain/integration"
)

// UserService resolves and creates users on the LMS
type UserService struct {
	client *Client
}

// NewUserService creates a new UserService
func NewUserService(client *Client) *UserService {
	return &UserService{client: client}
}

// FindUserByEmail returns the remote user id for an email address.
// Returns integration.ErrRemoteUserNotFound on a clean miss; the lookup
// is idempotent and is what makes "find before create" safe to re-run.
func (s *UserService) FindUserByEmail(ctx context.Context, email string) (int64, error) {
	params := url.Values{}
	params.Set("field", "email")
	params.Set("values[0]", email)

	var users []remoteUser
	if err := s.client.Call(ctx, "core_user_get_users_by_field", params, &users); err != nil {
		return 0, err
	}

	if len(users) == 0 {
		return 0, integration.ErrRemoteUserNotFound
	}
	return users[0].ID, nil
}

// CreateUser creates a remote user from a person profile and returns
// its id. Fails with an ExternalService error when the remote response
// is empty or lacks a valid id.
func (s *UserService) CreateUser(ctx context.Context, profile integration.UserProfile) (int64, error) {
	params := url.Values{}
	params.Set("users[0][username]", integration.UsernameFromEmail(profile.Email))
	params.Set("users[0][createpassword]", "1")
	params.Set("users[0][firstname]", profile.FirstName)
	params.Set("users[0][lastname]", profile.LastName)
	params.Set("users[0][email]", profile.Email)
	if profile.Country != "" {
		params.Set("users[0][country]", profile.Country)
	}
	if profile.City != "" {
		params.Set("users[0][city]", profile.City)
	}
	if profile.Phone != "" {
		params.Set("users[0][phone1]", profile.Phone)
	}
	if profile.Institution != "" {
		params.Set("users[0][institution]", profile.Institution)
	}
	if profile.Profession != "" {
		params.Set("users[0][department]", profile.Profession)
	}

	var created []remoteUser
	if err := s.client.Call(ctx, "core_user_create_users", params, &created); err != nil {
		return 0, err
	}

	if len(created) == 0 || created[0].ID <= 0 {
		return 0, integration.NewExternalError(
			fmt.Sprintf("lms: user creation for %s returned no valid id", profile.Email), nil)
	}
	return created[0].ID, nil
}

// Ensure UserService implements the UserGateway port
var _ integration.UserGateway = (*UserService)(nil)
