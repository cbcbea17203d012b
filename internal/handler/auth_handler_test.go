package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/handler"
	"github.com/edunexo/academico-api/internal/middleware"
	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/service"
	"github.com/edunexo/academico-api/internal/session"
)

type mockAuthService struct {
	user models.User
	err  error
}

func (m *mockAuthService) Register(context.Context, dto.RegisterRequest) (models.User, error) {
	return m.user, m.err
}

func (m *mockAuthService) Login(context.Context, dto.LoginRequest) (models.User, error) {
	return m.user, m.err
}

func (m *mockAuthService) GetUser(context.Context, string) (models.User, error) {
	return m.user, m.err
}

func newAuthApp(t *testing.T, svc service.AuthService) (*fiber.App, *session.Store) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	store := session.NewStore(client, time.Hour)
	authHandler := handler.NewAuthHandler(svc, store, "academico_session", false, zerolog.New(io.Discard))

	app := fiber.New()
	auth := app.Group("/api/auth")
	authHandler.RegisterPublic(auth)
	authHandler.RegisterProtected(auth.Group("", middleware.SessionProtected(store, svc, "academico_session")))

	return app, store
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "academico_session" {
			return cookie
		}
	}
	return nil
}

func TestAuthHandlerRegisterStartsSession(t *testing.T) {
	svc := &mockAuthService{user: models.User{ID: "u-1", Email: "new@example.com", Role: models.RoleAdmin}}
	app, _ := newAuthApp(t, svc)

	payload := dto.RegisterRequest{Email: "new@example.com", Password: "secret1", Name: "New", Role: models.RoleAdmin}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
}

func TestAuthHandlerLoginSetsCookieAndMeResolves(t *testing.T) {
	svc := &mockAuthService{user: models.User{ID: "u-2", Email: "admin@example.com", Role: models.RoleAdmin}}
	app, _ := newAuthApp(t, svc)

	payload := dto.LoginRequest{Email: "admin@example.com", Password: "secret1"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)

	me := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	me.AddCookie(cookie)
	resp, err = app.Test(me)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool        `json:"success"`
		Data    models.User `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Equal(t, "admin@example.com", response.Data.Email)
	require.Empty(t, response.Data.Password, "password must never be serialized")
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	svc := &mockAuthService{err: service.ErrInvalidCredentials}
	app, _ := newAuthApp(t, svc)

	payload := dto.LoginRequest{Email: "admin@example.com", Password: "wrong"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Nil(t, sessionCookie(resp))
}

func TestAuthHandlerLogoutIsIdempotent(t *testing.T) {
	svc := &mockAuthService{user: models.User{ID: "u-3", Email: "out@example.com", Role: models.RoleStudent}}
	app, store := newAuthApp(t, svc)

	token, err := store.Create(context.Background(), "u-3")
	require.NoError(t, err)

	logout := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	logout.AddCookie(&http.Cookie{Name: "academico_session", Value: token})
	resp, err := app.Test(logout)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, err = store.Get(context.Background(), token)
	require.ErrorIs(t, err, session.ErrNotFound)

	again := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp, err = app.Test(again)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
