//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"tour-booking-api/tests/common/dbtest"
	"tour-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestLogin() {
	cases := []struct {
		name       string
		email      string
		password   string
		deactivate bool
		expectCode int
	}{
		{name: "valid credentials", email: "admin@example.com", password: dbtest.TestPassword, expectCode: http.StatusOK},
		{name: "wrong password", email: "admin@example.com", password: "nope", expectCode: http.StatusUnauthorized},
		{name: "unknown user", email: "ghost@example.com", password: dbtest.TestPassword, expectCode: http.StatusUnauthorized},
		{name: "inactive account", email: "admin@example.com", password: dbtest.TestPassword, deactivate: true, expectCode: http.StatusForbidden},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "admin")
			if tc.deactivate {
				_, err := s.DB.Exec(s.T().Context(),
					"UPDATE users SET is_active = false WHERE email = $1", tc.email)
				require.NoError(s.T(), err)
			}

			rec := e2e.PerformJSON(s.T(), s.Router, http.MethodPost, loginURL,
				map[string]string{"email": tc.email, "password": tc.password}, "")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())

			if tc.expectCode == http.StatusOK {
				var resp struct {
					Success bool   `json:"success"`
					Token   string `json:"token"`
					User    struct {
						Email string `json:"email"`
						Role  string `json:"role"`
					} `json:"user"`
				}
				e2e.Decode(s.T(), rec.Body.Bytes(), &resp)
				s.True(resp.Success)
				s.NotEmpty(resp.Token)
				s.Equal(tc.email, resp.User.Email)
				s.Equal("admin", resp.User.Role)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns the profile behind the token", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", "customer")
		token := s.Login("customer@example.com")

		rec := e2e.PerformJSON(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code)

		var resp struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		e2e.Decode(s.T(), rec.Body.Bytes(), &resp)
		s.Equal("customer@example.com", resp.Email)
		s.Equal("customer", resp.Role)
	})

	s.Run("rejects missing and malformed tokens", func() {
		rec := e2e.PerformJSON(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)

		rec = e2e.PerformJSON(s.T(), s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *authSuite) TestRoleEnforcement() {
	s.Run("customers cannot reach admin endpoints", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", "customer")
		token := s.Login("customer@example.com")

		rec := e2e.PerformJSON(s.T(), s.Router, http.MethodGet, "/api/promotions/stats", nil, token)
		s.Equal(http.StatusForbidden, rec.Code, rec.Body.String())
	})

	s.Run("admins cannot use the guide dashboard", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "admin")
		token := s.Login("admin@example.com")

		rec := e2e.PerformJSON(s.T(), s.Router, http.MethodGet, "/api/guides/me/departures", nil, token)
		s.Equal(http.StatusForbidden, rec.Code, rec.Body.String())
	})
}
