package lms

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia/backend/internal/domain/integration"
)

func TestUserService_FindUserByEmail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "email", r.PostForm.Get("field"))
		assert.Equal(t, "ana@example.com", r.PostForm.Get("values[0]"))
		_, _ = w.Write([]byte(`[{"id":42,"username":"ana@example.com","email":"ana@example.com"}]`))
	})
	service := NewUserService(client)

	userID, err := service.FindUserByEmail(context.Background(), "ana@example.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestUserService_FindUserByEmail_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	service := NewUserService(client)

	_, err := service.FindUserByEmail(context.Background(), "nadie@example.com")

	assert.ErrorIs(t, err, integration.ErrRemoteUserNotFound)
}

func TestUserService_CreateUser(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ana@example.com", r.PostForm.Get("users[0][username]"))
		assert.Equal(t, "Ana", r.PostForm.Get("users[0][firstname]"))
		assert.Equal(t, "García", r.PostForm.Get("users[0][lastname]"))
		assert.Equal(t, "ES", r.PostForm.Get("users[0][country]"))
		_, _ = w.Write([]byte(`[{"id":77,"username":"ana@example.com"}]`))
	})
	service := NewUserService(client)

	userID, err := service.CreateUser(context.Background(), integration.UserProfile{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "Ana@Example.com",
		Country:   "ES",
		City:      "Madrid",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), userID)
}

func TestUserService_CreateUser_EmptyResponseFailsLoudly(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"zero id", `[{"id":0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			service := NewUserService(client)

			_, err := service.CreateUser(context.Background(), integration.UserProfile{
				FirstName: "Ana", LastName: "García", Email: "ana@example.com",
			})

			assert.Equal(t, integration.KindExternalService, integration.KindOf(err))
		})
	}
}
