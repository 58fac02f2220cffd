package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/internal/client/api"
	"github.com/carebook/carebook/internal/client/models"
	"github.com/carebook/carebook/internal/client/session"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestLogin_ProfileFromBackend(t *testing.T) {
	sess, repo := testSession(t)
	f := newFakeAPI()
	access := signToken(t, jwt.MapClaims{"user_id": 7, "user_type": 1})

	f.stub(http.MethodPost, api.PathLogin, http.StatusOK,
		fmt.Sprintf(`{"access":%q,"refresh":"r"}`, access))
	f.stub(http.MethodGet, api.PathProfile, http.StatusOK,
		`{"id":7,"username":"jdoe","email":"j@example.com","first_name":"Jane","last_name":"Doe","user_type":2,"phone":"555-0100"}`)

	svc := NewAuthService(f, sess, testLogger())
	user, err := svc.Login(context.Background(), "jdoe", "pw")
	require.NoError(t, err)

	assert.Equal(t, 7, user.ID)
	assert.Equal(t, models.RoleDoctor, user.Role, "numeric user_type 2 maps to doctor")
	assert.True(t, sess.IsAuthenticated())

	// credentials landed in the store together
	tok, err := repo.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, access, tok)
	stored, err := repo.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user, stored)
}

func TestLogin_ProfileFetchFails_UsesTokenClaims(t *testing.T) {
	sess, _ := testSession(t)
	f := newFakeAPI()
	access := signToken(t, jwt.MapClaims{"user_id": 7, "user_type": 2, "username": "drhouse"})

	f.stub(http.MethodPost, api.PathLogin, http.StatusOK,
		fmt.Sprintf(`{"access":%q,"refresh":"r"}`, access))
	f.stub(http.MethodGet, api.PathProfile, http.StatusInternalServerError, `{"detail":"server error"}`)

	svc := NewAuthService(f, sess, testLogger())
	user, err := svc.Login(context.Background(), "formname", "pw")
	require.NoError(t, err)

	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "drhouse", user.Username)
	assert.Equal(t, models.RoleDoctor, user.Role)
	assert.True(t, sess.IsAuthenticated())
}

func TestLogin_ProfileFetchFails_NoRoleClaim_DefaultsPatient(t *testing.T) {
	sess, _ := testSession(t)
	f := newFakeAPI()
	access := signToken(t, jwt.MapClaims{"user_id": 3})

	f.stub(http.MethodPost, api.PathLogin, http.StatusOK,
		fmt.Sprintf(`{"access":%q}`, access))
	f.stub(http.MethodGet, api.PathProfile, http.StatusInternalServerError, ``)

	svc := NewAuthService(f, sess, testLogger())
	user, err := svc.Login(context.Background(), "pat", "pw")
	require.NoError(t, err)

	assert.Equal(t, models.RolePatient, user.Role)
}

func TestLogin_UndecodableToken_FallsBackToFormValues(t *testing.T) {
	sess, _ := testSession(t)
	f := newFakeAPI()

	f.stub(http.MethodPost, api.PathLogin, http.StatusOK, `{"access":"not-a-jwt"}`)
	f.stub(http.MethodGet, api.PathProfile, http.StatusInternalServerError, ``)

	svc := NewAuthService(f, sess, testLogger())
	user, err := svc.Login(context.Background(), "formname", "pw")
	require.NoError(t, err)

	assert.Equal(t, "formname", user.Username)
	assert.Equal(t, "formname", user.FirstName)
	assert.Equal(t, models.RolePatient, user.Role)
}

func TestLogin_BadCredentials(t *testing.T) {
	sess, _ := testSession(t)
	f := newFakeAPI()
	f.stub(http.MethodPost, api.PathLogin, http.StatusUnauthorized,
		`{"detail":"No active account found with the given credentials"}`)

	svc := NewAuthService(f, sess, testLogger())
	_, err := svc.Login(context.Background(), "jdoe", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No active account found")
	assert.False(t, sess.IsAuthenticated())
}

func TestLogin_MissingAccessToken(t *testing.T) {
	sess, _ := testSession(t)
	f := newFakeAPI()
	f.stub(http.MethodPost, api.PathLogin, http.StatusOK, `{"refresh":"only"}`)

	svc := NewAuthService(f, sess, testLogger())
	_, err := svc.Login(context.Background(), "jdoe", "pw")
	require.Error(t, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestLogin_PersistFailureLeavesSessionLoggedOut(t *testing.T) {
	store := &failingStore{err: errors.New("disk full")}
	sess := session.NewManager(store, testLogger())
	sess.Bootstrap(context.Background())

	f := newFakeAPI()
	access := signToken(t, jwt.MapClaims{"user_id": 1})
	f.stub(http.MethodPost, api.PathLogin, http.StatusOK, fmt.Sprintf(`{"access":%q}`, access))
	f.stub(http.MethodGet, api.PathProfile, http.StatusOK, `{"id":1,"username":"u","user_type":1}`)

	svc := NewAuthService(f, sess, testLogger())
	_, err := svc.Login(context.Background(), "u", "pw")
	require.Error(t, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestRegister_Success(t *testing.T) {
	sess, _ := testSession(t)
	f := newFakeAPI()
	f.stub(http.MethodPost, api.PathRegister, http.StatusCreated, `{"id":10,"username":"new"}`)

	svc := NewAuthService(f, sess, testLogger())
	err := svc.Register(context.Background(), models.RegistrationForm{
		Username: "new", Email: "n@example.com", Password: "pw", Password2: "pw",
	})
	require.NoError(t, err)

	require.Len(t, f.calls, 1)
	form, ok := f.calls[0].body.(models.RegistrationForm)
	require.True(t, ok)
	assert.Equal(t, "new", form.Username)
	assert.Equal(t, "pw", form.Password2)
}

func TestRegister_FieldErrors(t *testing.T) {
	sess, _ := testSession(t)
	f := newFakeAPI()
	f.stub(http.MethodPost, api.PathRegister, http.StatusBadRequest,
		`{"username":["A user with that username already exists."],"password":["This password is too short."]}`)

	svc := NewAuthService(f, sess, testLogger())
	err := svc.Register(context.Background(), models.RegistrationForm{Username: "dup"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "A user with that username already exists.", verr.Fields["username"])
	assert.Equal(t, "This password is too short.", verr.Fields["password"])
}

func TestRequestPasswordReset(t *testing.T) {
	sess, _ := testSession(t)
	f := newFakeAPI()
	f.stub(http.MethodPost, api.PathPasswordReset, http.StatusNoContent, ``)

	svc := NewAuthService(f, sess, testLogger())
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "j@example.com"))
}

// End-to-end over a real HTTP round trip: token issue succeeds, the profile
// endpoint is down, and the session still comes up populated from the token
// claims and survives a simulated restart.
func TestLogin_ClaimFallback_EndToEnd(t *testing.T) {
	access := signToken(t, jwt.MapClaims{"user_id": 7, "user_type": 2, "username": "drhouse"})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case api.PathLogin:
			w.Write([]byte(fmt.Sprintf(`{"access":%q,"refresh":"r"}`, access)))
		case api.PathProfile:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"boom"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	sess, repo := testSession(t)
	client := api.New(srv.URL, repo, testLogger())

	svc := NewAuthService(client, sess, testLogger())
	user, err := svc.Login(context.Background(), "drhouse", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.RoleDoctor, user.Role)

	// restart: a fresh manager over the same store sees the same profile
	restarted := session.NewManager(repo, testLogger())
	restarted.Bootstrap(context.Background())
	require.True(t, restarted.IsAuthenticated())
	assert.Equal(t, user, restarted.CurrentUser())
}
