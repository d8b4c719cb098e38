package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzumara/wms-backend/internal/modules/user"
	"github.com/mzumara/wms-backend/internal/storage"
)

var testSecret = []byte("test-secret")

func newTestAuth() Service {
	users := user.NewService(user.NewKVRepository(storage.NewMemoryStore()))
	return NewService(users, testSecret)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ann", "pw"))
	token, err := svc.Login(ctx, "ann", "pw")
	require.NoError(t, err)

	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "ann", claims.Subject)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ann", "pw"))

	_, err := svc.Login(ctx, "ann", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ghost", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, user.ErrMissingFields)
}

func TestMiddlewareRecoversActor(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "ann", "pw"))
	token, err := svc.Login(ctx, "ann", "pw")
	require.NoError(t, err)

	mw := NewMiddleware(testSecret)
	var actor string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = Actor(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.RequireUser(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ann", actor)
}

func TestMiddlewareRejectsMissingOrBadToken(t *testing.T) {
	mw := NewMiddleware(testSecret)
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	mw.RequireUser(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	mw.RequireUser(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
