package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reviewhub/internal/httpapi/apierror"
	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/policy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupUserRouter(mockService *MockUserService, actor policy.Actor) *gin.Engine {
	router := setupRouter()
	handler := NewUserHandler(mockService)
	authed := router.Group("/api/v1", asActor(actor))
	handler.RegisterRoutes(authed)
	return router
}

func adminActor() policy.Actor {
	return policy.Actor{ID: "admin-1", Role: models.RoleAdmin, Authenticated: true}
}

func plainActor() policy.Actor {
	return policy.Actor{ID: "user-1", Role: models.RoleUser, Authenticated: true}
}

func TestUserGetMe(t *testing.T) {
	mockService := new(MockUserService)
	router := setupUserRouter(mockService, plainActor())

	user := &models.User{ID: "user-1", Username: "bob", Email: "bob@example.com", Role: models.RoleUser}
	mockService.On("GetByID", mock.Anything, "user-1").Return(user, nil)

	req, _ := http.NewRequest("GET", "/api/v1/users/me", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.UserResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "bob", response.Username)
	assert.Equal(t, models.RoleUser, response.Role)

	mockService.AssertExpectations(t)
}

func TestUserUpdateMe(t *testing.T) {
	mockService := new(MockUserService)
	router := setupUserRouter(mockService, plainActor())

	bio := "hello"
	payload := dto.UpdateUserDTO{Bio: &bio}
	updated := &models.User{ID: "user-1", Username: "bob", Bio: "hello", Role: models.RoleUser}
	mockService.On("UpdateSelf", mock.Anything, "user-1", payload).Return(updated, nil)

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("PATCH", "/api/v1/users/me", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestUserList_AdminOnly(t *testing.T) {
	mockService := new(MockUserService)
	router := setupUserRouter(mockService, plainActor())

	req, _ := http.NewRequest("GET", "/api/v1/users", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserList_AsAdmin(t *testing.T) {
	mockService := new(MockUserService)
	router := setupUserRouter(mockService, adminActor())

	users := []models.User{
		{ID: "u1", Username: "alice", Role: models.RoleUser},
		{ID: "u2", Username: "bob", Role: models.RoleModerator},
	}
	mockService.On("List", mock.Anything, "", 1, 20).Return(users, int64(2), nil)

	req, _ := http.NewRequest("GET", "/api/v1/users", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.Paginated[dto.UserResponse]
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Data, 2)

	mockService.AssertExpectations(t)
}

func TestUserCreate_AsAdmin(t *testing.T) {
	mockService := new(MockUserService)
	router := setupUserRouter(mockService, adminActor())

	payload := dto.CreateUserDTO{
		Username: "newmod",
		Email:    "newmod@example.com",
		Role:     models.RoleModerator,
	}
	created := &models.User{ID: "u3", Username: "newmod", Email: "newmod@example.com", Role: models.RoleModerator}
	mockService.On("Create", mock.Anything, payload).Return(created, nil)

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/api/v1/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestUserGetByUsername_Unknown(t *testing.T) {
	mockService := new(MockUserService)
	router := setupUserRouter(mockService, adminActor())

	mockService.On("GetByUsername", mock.Anything, "ghost").
		Return(nil, apierror.NotFound("user"))

	req, _ := http.NewRequest("GET", "/api/v1/users/ghost", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserDelete_AsAdmin(t *testing.T) {
	mockService := new(MockUserService)
	router := setupUserRouter(mockService, adminActor())

	mockService.On("DeleteByUsername", mock.Anything, "bob").Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/users/bob", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestUserDelete_AsPlainUser(t *testing.T) {
	mockService := new(MockUserService)
	router := setupUserRouter(mockService, plainActor())

	req, _ := http.NewRequest("DELETE", "/api/v1/users/bob", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertNotCalled(t, "DeleteByUsername", mock.Anything, mock.Anything)
}
