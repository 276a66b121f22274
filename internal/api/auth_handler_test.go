package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amihq/ami-auth/internal/mocks"
	"github.com/amihq/ami-auth/internal/service/auth"
)

func newTestHandler(t *testing.T) (*AuthHandler, *mocks.MockAccountStore) {
	t.Helper()
	accounts := mocks.NewMockAccountStore()
	svc := auth.NewAuthService(accounts, auth.NewBcryptHasher(bcrypt.MinCost), nil)
	return NewAuthHandler(svc, nil), accounts
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payloadBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestSignup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantUserID bool
	}{
		{
			name: "valid signup",
			payload: map[string]interface{}{
				"name":     "Ann",
				"email":    "ann@example.com",
				"password": "secret123",
			},
			wantStatus: http.StatusCreated,
			wantUserID: true,
		},
		{
			name: "missing name",
			payload: map[string]interface{}{
				"email":    "ann@example.com",
				"password": "secret123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"name":     "Ann",
				"password": "secret123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"name":  "Ann",
				"email": "ann@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "whitespace-only name",
			payload: map[string]interface{}{
				"name":     "   ",
				"email":    "ann@example.com",
				"password": "secret123",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, accounts := newTestHandler(t)

			recorder := postJSON(t, handler.Signup, "/api/auth/signup", tt.payload)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantUserID {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.NotEqual(t, uuid.Nil, resp.UserID)
				assert.Equal(t, "User created", resp.Message)
			} else {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "name, email and password are required", resp.Error)
				// No record is created on a rejected signup
				assert.Equal(t, 0, accounts.Len())
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)

	first := postJSON(t, handler.Signup, "/api/auth/signup", map[string]interface{}{
		"name":     "Ann",
		"email":    "A@B.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// Same email after trimming and lowercasing
	second := postJSON(t, handler.Signup, "/api/auth/signup", map[string]interface{}{
		"name":     "Ann2",
		"email":    "a@b.com ",
		"password": "other",
	})
	assert.Equal(t, http.StatusConflict, second.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(second.Body).Decode(&resp))
	assert.Equal(t, "User with that email already exists", resp.Error)
}

func TestSignupInvalidJSON(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewBufferString("{not json"))
	recorder := httptest.NewRecorder()
	handler.Signup(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)

	signup := postJSON(t, handler.Signup, "/api/auth/signup", map[string]interface{}{
		"name":     "Ann",
		"email":    "ann@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	var signupResp AuthResponse
	require.NoError(t, json.NewDecoder(signup.Body).Decode(&signupResp))

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid login",
			payload: map[string]interface{}{
				"email":    "ann@example.com",
				"password": "secret123",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unnormalized email",
			payload: map[string]interface{}{
				"email":    "  ANN@example.com ",
				"password": "secret123",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			payload: map[string]interface{}{
				"email":    "ann@example.com",
				"password": "wrong",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			payload: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "secret123",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"password": "secret123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "ann@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler.Login, "/api/auth/login", tt.payload)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			switch tt.wantStatus {
			case http.StatusOK:
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, signupResp.UserID, resp.UserID)
				assert.Equal(t, "Login successful", resp.Message)
			case http.StatusBadRequest:
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "email and password are required", resp.Error)
			}
		})
	}
}

// Failed logins must not leak whether the email exists: wrong password and
// unknown email produce byte-identical response bodies.
func TestLoginFailureResponsesIndistinguishable(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)

	signup := postJSON(t, handler.Signup, "/api/auth/signup", map[string]interface{}{
		"name":     "Ann",
		"email":    "ann@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	wrongPass := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
		"email":    "ann@example.com",
		"password": "wrong",
	})
	unknownEmail := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPass.Body.String(), unknownEmail.Body.String())
}
