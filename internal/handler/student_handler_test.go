package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/handler"
	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/service"
)

type mockStudentService struct {
	students []models.Student
	student  models.Student
	err      error
}

func (m *mockStudentService) List(context.Context) ([]models.Student, error) {
	return m.students, m.err
}

func (m *mockStudentService) Get(context.Context, string) (models.Student, error) {
	return m.student, m.err
}

func (m *mockStudentService) Create(_ context.Context, payload dto.StudentCreateRequest) (models.Student, error) {
	if m.err != nil {
		return models.Student{}, m.err
	}
	return m.student, nil
}

func (m *mockStudentService) Update(context.Context, string, dto.StudentUpdateRequest) (models.Student, error) {
	return m.student, m.err
}

func (m *mockStudentService) Delete(context.Context, string) error {
	return m.err
}

func newStudentApp(svc service.StudentService) *fiber.App {
	app := fiber.New()
	handler.NewStudentHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/students"))
	return app
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}

func jsonRequest(t *testing.T, method, path string, payload interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestStudentHandlerListSuccess(t *testing.T) {
	svc := &mockStudentService{students: []models.Student{{ID: "s-1", StudentCode: "STU-1"}}}
	app := newStudentApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/students", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool             `json:"success"`
		Data    []models.Student `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Len(t, response.Data, 1)
	require.Equal(t, "STU-1", response.Data[0].StudentCode)
}

func TestStudentHandlerGetNotFound(t *testing.T) {
	svc := &mockStudentService{err: service.ErrStudentNotFound}
	app := newStudentApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/students/s-404", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStudentHandlerCreateCreated(t *testing.T) {
	svc := &mockStudentService{student: models.Student{ID: "s-2", StudentCode: "STU-2"}}
	app := newStudentApp(svc)

	payload := dto.StudentCreateRequest{UserID: "u-1", StudentCode: "STU-2", Grade: "10A", EnrollmentDate: "2026-02-01"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/students", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestStudentHandlerCreateDuplicates(t *testing.T) {
	for _, sentinel := range []error{service.ErrStudentProfileExists, service.ErrDuplicateStudentCode} {
		svc := &mockStudentService{err: sentinel}
		app := newStudentApp(svc)

		payload := dto.StudentCreateRequest{UserID: "u-1", StudentCode: "STU-3", Grade: "10A", EnrollmentDate: "2026-02-01"}
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/students", payload))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}

func TestStudentHandlerDeleteGuarded(t *testing.T) {
	svc := &mockStudentService{err: service.ErrStudentHasEnrollments}
	app := newStudentApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/students/s-1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &response)
	require.False(t, response.Success)
	require.NotEmpty(t, response.Message)
}
