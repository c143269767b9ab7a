package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"complaint-tracker/internal/models"
	"complaint-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin_Faculty(t *testing.T) {
	env := newTestEnv(t)
	faculty := &models.Faculty{
		FacultyID:   "F100",
		FacultyName: "Dr. Mehta",
		EmailID:     "mehta@college.edu",
		Password:    "$2a$10$storedhash",
	}
	env.accounts.On("Login", mock.Anything, models.RoleFaculty, "mehta@college.edu", "s3cret").Return(faculty, nil)

	w := env.do(http.MethodPost, "/login/faculty", map[string]string{
		"email_id": "mehta@college.edu",
		"password": "s3cret",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "faculty", body["role"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "F100", user["faculty_id"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, w.Body.String(), "storedhash")
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestLogin_WorkerUsesMobileNumber(t *testing.T) {
	env := newTestEnv(t)
	worker := &models.Worker{Name: "Sam", MobileNo: "9876543210", Category: "Electrical"}
	env.accounts.On("Login", mock.Anything, models.RoleWorker, "9876543210", "pw").Return(worker, nil)

	w := env.do(http.MethodPost, "/login/worker", map[string]string{
		"mobile_no": "9876543210",
		"password":  "pw",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "worker", decode(t, w)["role"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	for _, role := range []models.UserRole{models.RoleFaculty, models.RoleIncharge, models.RoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			env := newTestEnv(t)
			env.accounts.On("Login", mock.Anything, role, "x@college.edu", "wrong").
				Return(nil, service.ErrInvalidCredentials)

			w := env.do(http.MethodPost, "/login/"+role.String(), map[string]string{
				"email_id": "x@college.edu",
				"password": "wrong",
			})

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			body := decode(t, w)
			assert.Equal(t, "Invalid credentials", body["message"])
			assert.NotContains(t, body, "user")
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	// a worker logs in with mobile_no, email_id is ignored
	w := env.do(http.MethodPost, "/login/worker", map[string]string{
		"email_id": "sam@college.edu",
		"password": "pw",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env.accounts.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_DatabaseFailure(t *testing.T) {
	env := newTestEnv(t)
	env.accounts.On("Login", mock.Anything, models.RoleAdmin, "root@college.edu", "pw").
		Return(nil, errors.New("find admin account: timeout"))

	w := env.do(http.MethodPost, "/login/admin", map[string]string{
		"email_id": "root@college.edu",
		"password": "pw",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	admin := &models.Admin{Name: "Root", EmailID: "root@college.edu"}
	env.accounts.On("Login", mock.Anything, models.RoleAdmin, "root@college.edu", "pw").Return(admin, nil)
	w = env.do(http.MethodPost, "/login/admin", map[string]string{
		"email_id": "root@college.edu",
		"password": "pw",
	})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = env.do(http.MethodGet, "/session", nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "root@college.edu", body["user_id"])
	assert.Equal(t, "admin", body["role"])

	w = env.do(http.MethodPost, "/logout", nil, cookies...)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	env.accounts.On("ChangePassword", mock.Anything, models.RoleIncharge, "raj@college.edu", "n3w").Return("Raj", nil)

	w := env.do(http.MethodPut, "/change-password/incharge/raj@college.edu", map[string]string{"newPassword": "n3w"})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Password updated successfully", body["message"])
	assert.Equal(t, "Raj", body["user"].(map[string]interface{})["name"])
}

func TestChangePassword_UnknownUserType(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPut, "/change-password/janitor/42", map[string]string{"newPassword": "n3w"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid user type", decode(t, w)["error"])
	env.accounts.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", service.ErrUserNotFound, http.StatusNotFound},
		{"bad password", service.ErrInvalidPassword, http.StatusBadRequest},
		{"database", errors.New("update faculty password: broken pipe"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.accounts.On("ChangePassword", mock.Anything, models.RoleFaculty, "F100", "pw").Return("", tt.err)

			w := env.do(http.MethodPut, "/change-password/faculty/F100", map[string]string{"newPassword": "pw"})

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
