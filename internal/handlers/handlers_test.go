package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"adminpanel/api/internal/audit"
	"adminpanel/api/internal/authgate"
	"adminpanel/api/internal/config"
	"adminpanel/api/internal/models"
	"adminpanel/api/internal/repository"
	"adminpanel/api/internal/security"
	"adminpanel/api/internal/service"
	"adminpanel/api/internal/session"
)

const testSecret = "handler-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// fakeUserStore is an in-memory stand-in for the postgres repository.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]models.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return models.User{}, repository.ErrEmailTaken
		}
	}

	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user

	return publicCopy(user), nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetPublicByID(ctx context.Context, id int64) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return publicCopy(user), nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	users := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, publicCopy(user))
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (f *fakeUserStore) Update(ctx context.Context, id int64, changes repository.UserChanges) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}

	if changes.Name != nil {
		if *changes.Name == "" {
			user.Name = nil
		} else {
			name := *changes.Name
			user.Name = &name
		}
	}
	if changes.Role != nil {
		user.Role = *changes.Role
	}
	if changes.PasswordHash != nil {
		user.PasswordHash = changes.PasswordHash
	}
	user.UpdatedAt = time.Now()
	f.users[id] = user

	return publicCopy(user), nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func publicCopy(user models.User) models.User {
	user.PasswordHash = nil
	return user
}

// seedUser inserts a user directly into the fake store, bypassing the
// service layer, and returns its id.
func seedUser(t *testing.T, store *fakeUserStore, email, password string, role models.UserRole) int64 {
	t.Helper()

	hash, err := security.HashPassword(password)
	require.NoError(t, err)

	store.mu.Lock()
	defer store.mu.Unlock()
	store.nextID++
	store.users[store.nextID] = models.User{
		ID:           store.nextID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	return store.nextID
}

func newTestEngine(t *testing.T, store *fakeUserStore) *gin.Engine {
	t.Helper()

	cfg := &config.AppConfig{
		Environment: "development",
		Security: config.SecurityConfig{
			SessionSecret: testSecret,
			SessionTTL:    time.Hour,
		},
	}
	logger := zerolog.Nop()

	h := HandlerSet{
		log:     logger,
		cfg:     cfg,
		auth:    service.NewAuthService(store, cfg, logger),
		userMgr: service.NewUserService(store, audit.NewRecorder(nil, cfg.Audit, logger), logger),
		gate:    authgate.New(store, testSecret, logger),
		cookies: session.NewCookieTransport(cfg.Environment, cfg.Security.SessionTTL),
	}

	engine := gin.New()
	h.Register(engine)
	return engine
}

func sessionCookie(t *testing.T, userID int64) *http.Cookie {
	t.Helper()

	token, err := security.IssueSessionToken(testSecret, userID, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func doRequest(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}
