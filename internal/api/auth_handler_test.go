package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmabolt/pharmabolt-api/internal/domain"
	"github.com/pharmabolt/pharmabolt-api/internal/store"
)

func validRegisterBody() map[string]any {
	return map[string]any{
		"full_name": "Jane Roe",
		"email":     "jane@example.com",
		"phone_no":  "08012345678",
		"password":  "s3cretpass",
		"address":   "12 Harbor Road",
		"city":      "Lagos",
		"state":     "Lagos",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("success returns 201 with user array and no password", func(t *testing.T) {
		t.Parallel()

		userStore := &stubUserStore{
			createFn: func(_ context.Context, user *domain.User) (*domain.User, error) {
				created := *user
				if err := created.Validate(); err != nil {
					return nil, err
				}
				created.ID = 7
				created.HashedPassword = "$2a$10$hash"
				created.Password = ""
				return &created, nil
			},
		}
		handler := NewAuthHandler(userStore, &stubTokenService{}, &stubVerifier{})

		w := postJSON(t, handler.Register, "/api/auth/register", validRegisterBody())

		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Error any              `json:"error"`
			Data  []map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Nil(t, resp.Error)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, float64(7), resp.Data[0]["id"])
		assert.Equal(t, "user", resp.Data[0]["role"])
		assert.NotContains(t, w.Body.String(), "password")
		assert.NotContains(t, w.Body.String(), "$2a$")
	})

	t.Run("validation reports every violation", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(&stubUserStore{}, &stubTokenService{}, &stubVerifier{})

		w := postJSON(t, handler.Register, "/api/auth/register", map[string]any{
			"full_name": "ab",
			"email":     "not-an-email",
			"password":  "short",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Errors []string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		// full_name min, email shape, phone_no required, password min,
		// address/city/state required.
		assert.Len(t, resp.Errors, 7)
		assert.Contains(t, strings.Join(resp.Errors, "; "), `"full_name"`)
		assert.Contains(t, strings.Join(resp.Errors, "; "), `"email"`)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		userStore := &stubUserStore{
			createFn: func(_ context.Context, _ *domain.User) (*domain.User, error) {
				return nil, store.ErrEmailExists
			},
		}
		handler := NewAuthHandler(userStore, &stubTokenService{}, &stubVerifier{})

		w := postJSON(t, handler.Register, "/api/auth/register", validRegisterBody())

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t,
			`{"error":{"message":"User already exists. Please login.","details":null}}`,
			w.Body.String())
	})

	t.Run("caller-supplied role is passed through", func(t *testing.T) {
		t.Parallel()

		var gotRole domain.Role
		userStore := &stubUserStore{
			createFn: func(_ context.Context, user *domain.User) (*domain.User, error) {
				gotRole = user.Role
				created := *user
				created.ID = 1
				return &created, nil
			},
		}
		handler := NewAuthHandler(userStore, &stubTokenService{}, &stubVerifier{})

		body := validRegisterBody()
		body["role"] = "admin"
		w := postJSON(t, handler.Register, "/api/auth/register", body)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, domain.RoleAdmin, gotRole)
	})

	t.Run("role outside the enum is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(&stubUserStore{}, &stubTokenService{}, &stubVerifier{})

		body := validRegisterBody()
		body["role"] = "superadmin"
		w := postJSON(t, handler.Register, "/api/auth/register", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `\"role\" must be one of [admin user]`)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	knownUser := &domain.User{
		ID:             42,
		Email:          "jane@example.com",
		HashedPassword: "$2a$10$hash",
		Role:           domain.RoleUser,
	}

	lookup := func(_ context.Context, email string) (*domain.User, error) {
		if email == knownUser.Email {
			return knownUser, nil
		}
		return nil, store.ErrUserNotFound
	}

	t.Run("success returns only the token", func(t *testing.T) {
		t.Parallel()

		tokenService := &stubTokenService{
			generateFn: func(_ context.Context, userID int64, role domain.Role) (string, error) {
				assert.Equal(t, int64(42), userID)
				assert.Equal(t, domain.RoleUser, role)
				return "signed.jwt.token", nil
			},
		}
		handler := NewAuthHandler(
			&stubUserStore{getByEmailFn: lookup},
			tokenService,
			&stubVerifier{accept: "s3cretpass"},
		)

		w := postJSON(t, handler.Login, "/api/auth/login", map[string]any{
			"email":    "jane@example.com",
			"password": "s3cretpass",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"signed.jwt.token"}`, w.Body.String())
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(
			&stubUserStore{getByEmailFn: lookup},
			&stubTokenService{},
			&stubVerifier{accept: "s3cretpass"},
		)

		unknown := postJSON(t, handler.Login, "/api/auth/login", map[string]any{
			"email":    "nobody@example.com",
			"password": "s3cretpass",
		})
		wrongPass := postJSON(t, handler.Login, "/api/auth/login", map[string]any{
			"email":    "jane@example.com",
			"password": "wrong",
		})

		require.Equal(t, http.StatusBadRequest, unknown.Code)
		require.Equal(t, http.StatusBadRequest, wrongPass.Code)
		assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
		assert.JSONEq(t,
			`{"error":{"message":"Invalid Credentials","details":null}}`,
			unknown.Body.String())
	})
}
