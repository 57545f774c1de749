package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "github.com/radenmas/socialite-api/internal/application"
	"github.com/radenmas/socialite-api/internal/domain/entity"
	repo "github.com/radenmas/socialite-api/internal/domain/repository"
	"github.com/radenmas/socialite-api/pkg/helpers"
)

type memUserRepo struct {
	users  map[string]*entity.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(u *entity.User) error {
	var fields []string
	for _, ex := range m.users {
		if ex.Username == u.Username {
			fields = append(fields, "username")
		}
		if ex.Email == u.Email {
			fields = append(fields, "email")
		}
	}
	if len(fields) > 0 {
		return &repo.UniqueViolationError{Fields: fields}
	}
	m.nextID++
	u.ID = "u-" + strconv.Itoa(m.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) Update(u *entity.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *memUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMemUserRepo()
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	svc := userapp.NewService(users, nil, jwt, nil, nil, nil, nil, "", nil, false)
	h := NewUserHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users", h.Register)
	api.POST("/users/login", h.Login)
	api.PUT("/user", h.UpdateProfile)
	return r, users
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterLoginScenario(t *testing.T) {
	r, _ := newTestRouter(t)

	// register ann
	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"username": "ann",
		"email":    "ann@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "ann", user["username"])
	assert.NotEmpty(t, user["token"])
	assert.NotContains(t, strings.ToLower(w.Body.String()), "hash")

	// register again with the same email
	w = doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"username": "other",
		"email":    "ann@x.com",
		"password": "secret2",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	body = decode(t, w)
	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Contains(t, errs, "email already exists")

	// login with wrong password
	w = doJSON(t, r, http.MethodPost, "/api/users/login", gin.H{
		"email":    "ann@x.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decode(t, w)
	errs, ok = body["errors"].([]any)
	require.True(t, ok)
	assert.Contains(t, errs, "incorrect Email/Password")
}

func TestRegisterValidationDetails(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"username": "ab",
		"email":    "nope",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	details, ok := body["details"].([]any)
	require.True(t, ok)
	assert.Contains(t, details, `"username" length must be between 3 and 20 characters long`)
	assert.Contains(t, details, `"email" must be a valid email`)
}

func TestLoginMissingCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users/login", gin.H{"email": "ann@x.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	errs := body["errors"].([]any)
	assert.Contains(t, errs, "missing Email/Password")
}

func updateForm(t *testing.T, r *gin.Engine, token string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/user", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("X-Access-Token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateProfileEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"username": "ann",
		"email":    "ann@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	user := decode(t, w)["data"].(map[string]any)["user"].(map[string]any)
	token := user["token"].(string)

	// changing the email is rejected outright
	w = updateForm(t, r, token, map[string]string{
		"email":    "new@x.com",
		"username": "ann2",
		"bio":      "hi",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	errs := decode(t, w)["errors"].([]any)
	assert.Contains(t, errs, "you cannot edit this entry")

	// a valid update succeeds
	w = updateForm(t, r, token, map[string]string{
		"email":    "ann@x.com",
		"username": "ann2",
		"bio":      "hi",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "update successful", body["message"])
	updated := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "ann2", updated["username"])
	assert.Equal(t, "hi", updated["bio"])

	// a bad token is a 401, not a 500
	w = updateForm(t, r, "garbage", map[string]string{"email": "ann@x.com"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
