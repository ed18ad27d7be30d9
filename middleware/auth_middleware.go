package middleware

import (
	"errors" // Import errors package
	"log"
	"strings" // For string manipulation (Bearer token)

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid" // For parsing UUID from token

	"fittrack/backend/config" // To get JWT secret
)

// Protected verifies the HS256 bearer token issued by the auth provider and
// stores the user id as a uuid.UUID in c.Locals("userID"). The id is read
// from the "sub" claim, or from "user_id" for tokens that carry it instead.
//
// An empty secret rejects every request.
func Protected(cfg *config.Config) fiber.Handler {
	if cfg == nil || cfg.JWTSecret == "" {
		log.Println("Auth Middleware: JWT secret is not configured, rejecting all requests")
		return func(c *fiber.Ctx) error {
			return unauthorized(c, "Unauthorized: Authentication is not configured")
		}
	}
	secret := []byte(cfg.JWTSecret)

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			log.Println("Auth Middleware: Missing Authorization header")
			return unauthorized(c, "Unauthorized: Missing authorization token")
		}

		// Check if the header format is "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Println("Auth Middleware: Invalid Authorization header format")
			return unauthorized(c, "Unauthorized: Invalid token format")
		}

		// Parse and validate the token
		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			// Only HMAC tokens are issued by the provider
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				log.Printf("Auth Middleware: Unexpected signing method: %v", token.Header["alg"])
				return nil, jwt.ErrSignatureInvalid
			}
			// Return the secret key for validation
			return secret, nil
		})
		if err != nil {
			log.Printf("Auth Middleware: Error parsing or validating token: %v", err)
			// Handle specific JWT errors (e.g., expired token)
			if errors.Is(err, jwt.ErrTokenExpired) {
				return unauthorized(c, "Unauthorized: Token has expired")
			}
			return unauthorized(c, "Unauthorized: Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			log.Println("Auth Middleware: Token deemed invalid.")
			return unauthorized(c, "Unauthorized: Invalid token")
		}

		// Extract user ID from claims
		userIDStr, _ := claims["sub"].(string)
		if userIDStr == "" {
			userIDStr, _ = claims["user_id"].(string)
		}
		if userIDStr == "" {
			log.Println("Auth Middleware: 'sub' and 'user_id' claims missing from token")
			return unauthorized(c, "Unauthorized: Invalid token claims (missing subject)")
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			log.Printf("Auth Middleware: Failed to parse subject '%s' as UUID: %v", userIDStr, err)
			return unauthorized(c, "Unauthorized: Invalid token claims (invalid subject format)")
		}

		// Store user ID in context locals for subsequent handlers
		c.Locals("userID", userID)
		return c.Next() // Proceed to the next handler
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
