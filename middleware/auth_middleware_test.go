package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/backend/config"
)

const testSecret = "test-secret-key"

func signed(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", Protected(&config.Config{JWTSecret: testSecret}), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userID").(uuid.UUID).String())
	})
	return app
}

func TestProtected(t *testing.T) {
	userID := uuid.New()
	exp := time.Now().Add(time.Hour).Unix()

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"sub claim", "Bearer " + signed(t, jwt.MapClaims{"sub": userID.String(), "exp": exp}, testSecret), fiber.StatusOK},
		{"user_id claim", "Bearer " + signed(t, jwt.MapClaims{"user_id": userID.String(), "exp": exp}, testSecret), fiber.StatusOK},
		{"missing header", "", fiber.StatusUnauthorized},
		{"bad format", "Token abc", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + signed(t, jwt.MapClaims{"sub": userID.String(), "exp": exp}, "other"), fiber.StatusUnauthorized},
		{"expired", "Bearer " + signed(t, jwt.MapClaims{"sub": userID.String(), "exp": time.Now().Add(-time.Hour).Unix()}, testSecret), fiber.StatusUnauthorized},
		{"no subject", "Bearer " + signed(t, jwt.MapClaims{"exp": exp}, testSecret), fiber.StatusUnauthorized},
		{"subject not uuid", "Bearer " + signed(t, jwt.MapClaims{"sub": "alice", "exp": exp}, testSecret), fiber.StatusUnauthorized},
	}

	app := newProtectedApp()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.status == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, userID.String(), string(body))
			}
		})
	}
}

// emptyKeyToken builds an HS256 token signed with an empty key by hand.
func emptyKeyToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	signingInput := base64.RawURLEncoding.EncodeToString(header) + "." + base64.RawURLEncoding.EncodeToString(payload)
	mac := hmac.New(sha256.New, []byte(""))
	mac.Write([]byte(signingInput))
	return signingInput + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func TestProtected_EmptySecretRejectsEverything(t *testing.T) {
	app := fiber.New()
	app.Get("/me", Protected(&config.Config{JWTSecret: ""}), func(c *fiber.Ctx) error {
		return c.SendString("reached")
	})

	token := emptyKeyToken(t, map[string]any{"sub": uuid.New().String(), "exp": time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "reached")
}

func TestProtected_NilConfigRejects(t *testing.T) {
	app := fiber.New()
	app.Get("/me", Protected(nil), func(c *fiber.Ctx) error {
		return c.SendString("reached")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
