package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"staffhub/config"
	apimiddleware "staffhub/internal/delivery/api/middleware"
	"staffhub/internal/delivery/api/router"
	"staffhub/internal/delivery/api/router/handler"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/service"
	"staffhub/internal/errors"
	"staffhub/internal/infra/auth"
	mockUC "staffhub/internal/mocks/usecase"
	"staffhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo         *echo.Echo
	employeeUC   *mockUC.MockEmployeeUsecase
	departmentUC *mockUC.MockDepartmentUsecase
	tokens       service.TokenService
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newAPIFixtures(t *testing.T) apiFixtures {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test-secret"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	fx := apiFixtures{
		echo:         newEcho(cfg, logger),
		employeeUC:   mockUC.NewMockEmployeeUsecase(t),
		departmentUC: mockUC.NewMockDepartmentUsecase(t),
		tokens:       tokens,
	}

	router.NewRouter(router.RouterParams{
		EmployeeHandler:   handler.NewEmployeeHandler(handler.EmployeeHandlerParams{EmployeeUC: fx.employeeUC, Logger: logger}),
		DepartmentHandler: handler.NewDepartmentHandler(handler.DepartmentHandlerParams{DepartmentUC: fx.departmentUC, Logger: logger}),
		AuthMiddleware:    apimiddleware.NewAuthMiddleware(tokens, logger),
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx apiFixtures) token(t *testing.T, role entity.Role) string {
	t.Helper()

	token, err := fx.tokens.GenerateToken(service.Identity{EmployeeID: 1, Name: "Caller", Role: role, Email: "caller@x.io"})
	require.NoError(t, err)

	return token
}

func (fx apiFixtures) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	fx.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestAPI_Health(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAPI_Login_ReturnsToken(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.employeeUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@x.io", Password: "p1"}).
		Return(&usecase.LoginOutput{Token: "signed"}, nil)

	rec, env := fx.do(t, http.MethodPost, "/employee/login", `{"email":"a@x.io","password":"p1"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"signed"`, string(env.Data))
}

func TestAPI_Login_IncorrectPassword(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.employeeUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrIncorrectPassword, "login"))

	rec, env := fx.do(t, http.MethodPost, "/employee/login", `{"email":"a@x.io","password":"bad"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INCORRECT_PASSWORD", env.Error.Code)
	assert.Equal(t, "Incorrect Password", env.Error.Message)
}

func TestAPI_MutationWithoutToken(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodPost, "/department", `{"name":"Sales","description":"Sells"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestAPI_StaffCannotUpdateEmployee(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodPut, "/employee/7", `{"name":"B"}`, fx.token(t, entity.RoleStaff))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.Equal(t, "You are not authorized to perform this action", env.Error.Message)
	fx.employeeUC.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAPI_HRUpdatesEmployee(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.employeeUC.EXPECT().
		Update(mock.Anything, uint(7), mock.AnythingOfType("*usecase.UpdateEmployeeInput")).
		RunAndReturn(func(_ context.Context, id uint, in *usecase.UpdateEmployeeInput) (*entity.Employee, error) {
			require.NotNil(t, in.Name)
			assert.Nil(t, in.Email)
			assert.Nil(t, in.Address)

			return &entity.Employee{ID: id, Name: *in.Name, PasswordHash: "secret-hash", Role: entity.RoleStaff}, nil
		})

	rec, env := fx.do(t, http.MethodPut, "/employee/7", `{"name":"B"}`, fx.token(t, entity.RoleHR))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"name":"B"`)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAPI_CreateEmployee_ValidationDetails(t *testing.T) {
	fx := newAPIFixtures(t)

	body := `{"email":"nope","name":"A","password":"p","role":"ADMIN","department":1}`
	rec, env := fx.do(t, http.MethodPost, "/employee", body, fx.token(t, entity.RoleHR))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	var details []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	}
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"email", "address", "role"}, fields)
}

func TestAPI_CreateEmployee_ReturnsOK(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.employeeUC.EXPECT().
		Create(mock.Anything, &usecase.CreateEmployeeInput{
			Email:        "alex@x.com",
			Name:         "Alex",
			Address:      usecase.AddressInput{Line1: "A St", Pincode: "12345"},
			Password:     "pw",
			Role:         entity.RoleHR,
			DepartmentID: 1,
		}).
		Return(&entity.Employee{
			ID:           1,
			Email:        "alex@x.com",
			Name:         "Alex",
			Role:         entity.RoleHR,
			DepartmentID: 1,
			Department:   &entity.Department{ID: 1, Name: "HR"},
			Address:      &entity.Address{ID: 1, Line1: "A St", Pincode: "12345"},
		}, nil)

	body := `{"email":"alex@x.com","name":"Alex","password":"pw","role":"HR","department":1,"address":{"line1":"A St","pincode":"12345"}}`
	rec, env := fx.do(t, http.MethodPost, "/employee", body, fx.token(t, entity.RoleHR))

	assert.Equal(t, http.StatusOK, rec.Code)
	var created handler.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, uint(1), created.ID)
	require.NotNil(t, created.Department)
	assert.Equal(t, uint(1), created.Department.ID)
	assert.Equal(t, "12345", created.Address.Pincode)
}

func TestAPI_CreateEmployee_OverlongFields(t *testing.T) {
	fx := newAPIFixtures(t)

	body := `{"email":"alex@x.com","name":"` + strings.Repeat("n", 256) + `","password":"pw","role":"HR","department":1,` +
		`"address":{"line1":"A St","pincode":"` + strings.Repeat("9", 17) + `"}}`
	rec, env := fx.do(t, http.MethodPost, "/employee", body, fx.token(t, entity.RoleHR))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `[{"field":"name","rule":"max"},{"field":"address.pincode","rule":"max"}]`, string(env.Error.Details))
	fx.employeeUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAPI_FindEmployee_NotFound(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.employeeUC.EXPECT().FindByID(mock.Anything, uint(9)).Return(nil, errors.WithStack(domainerrors.ErrEmployeeNotFound))

	rec, env := fx.do(t, http.MethodGet, "/employee/9", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Employee not found", env.Error.Message)
}

func TestAPI_InvalidPathID(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodGet, "/department/abc", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestAPI_DeleteDepartmentWithEmployees(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.departmentUC.EXPECT().Delete(mock.Anything, uint(1)).Return(nil, errors.WithStack(domainerrors.ErrDepartmentHasEmployees))

	rec, env := fx.do(t, http.MethodDelete, "/department/1", "", fx.token(t, entity.RoleHR))

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DEPARTMENT_HAS_EMPLOYEES", env.Error.Code)
	assert.Equal(t, "Department with active employees cannot be deleted", env.Error.Message)
}

func TestAPI_DeleteDepartment_OK(t *testing.T) {
	fx := newAPIFixtures(t)
	deletedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fx.departmentUC.EXPECT().Delete(mock.Anything, uint(3)).
		Return(&entity.Department{ID: 3, Name: "Legacy", DeletedAt: &deletedAt}, nil)

	rec, env := fx.do(t, http.MethodDelete, "/department/3", "", fx.token(t, entity.RoleHR))

	assert.Equal(t, http.StatusOK, rec.Code)
	var department handler.DepartmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &department))
	assert.Equal(t, uint(3), department.ID)
	require.NotNil(t, department.DeletedAt)
	assert.True(t, deletedAt.Equal(*department.DeletedAt))
}

func TestAPI_CreateDepartment_Created(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.departmentUC.EXPECT().
		Create(mock.Anything, &usecase.CreateDepartmentInput{Name: "Sales", Description: "Sells"}).
		Return(&entity.Department{ID: 4, Name: "Sales", Description: "Sells", Employees: []*entity.Employee{}}, nil)

	rec, env := fx.do(t, http.MethodPost, "/department", `{"name":"Sales","description":"Sells"}`, fx.token(t, entity.RoleHR))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var department handler.DepartmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &department))
	assert.Equal(t, uint(4), department.ID)
	assert.Equal(t, "Sales", department.Name)
	assert.NotNil(t, department.Employees)
	assert.Empty(t, department.Employees)
}

func TestAPI_UpdateDepartment_PassesEmployeeIDs(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.departmentUC.EXPECT().
		Update(mock.Anything, uint(2), &usecase.UpdateDepartmentInput{EmployeeIDs: []uint{7, 8}}).
		Return(&entity.Department{ID: 2, Name: "Ops", Employees: []*entity.Employee{{ID: 7}, {ID: 8}}}, nil)

	rec, env := fx.do(t, http.MethodPut, "/department/2", `{"employees":[{"id":7},{"id":8}]}`, fx.token(t, entity.RoleHR))

	assert.Equal(t, http.StatusOK, rec.Code)
	var department handler.DepartmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &department))
	assert.Len(t, department.Employees, 2)
}

func TestAPI_UnexpectedErrorIsGeneric500(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.departmentUC.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("connection refused"))

	rec, env := fx.do(t, http.MethodGet, "/department", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAPI_DatabaseErrorHidesDetails(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.employeeUC.EXPECT().FindAll(mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("pq: relation missing"), "failed to list employees"))

	rec, env := fx.do(t, http.MethodGet, "/employee", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Empty(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "relation missing")
}
