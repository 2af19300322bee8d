package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/casefolio/casefolio/internal/model"
)

var ErrInvalidAdminPassword = errors.New("invalid admin password")

const authCookieName = "auth_token"

// AuthService issues and verifies the session tokens carried in a cookie.
// The admin is a single config-provided credential; regular users come from
// the account service.
type AuthService struct {
	jwtSecret     string
	jwtExpiry     time.Duration
	adminPassword string
	isProduction  bool
}

func NewAuthService(jwtSecret, adminPassword string, jwtExpiry time.Duration, isProduction bool) *AuthService {
	return &AuthService{
		jwtSecret:     jwtSecret,
		jwtExpiry:     jwtExpiry,
		adminPassword: adminPassword,
		isProduction:  isProduction,
	}
}

// AuthenticateAdmin checks the shared admin credential.
func (s *AuthService) AuthenticateAdmin(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return ErrInvalidAdminPassword
	}
	return nil
}

func (s *AuthService) GenerateJWT(identity model.Identity) (string, error) {
	claims := jwt.MapClaims{
		"email": identity.Email,
		"admin": identity.Admin,
		"exp":   time.Now().Add(s.jwtExpiry).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (*model.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	email, _ := claims["email"].(string)
	admin, _ := claims["admin"].(bool)

	return &model.Identity{Email: email, Admin: admin}, nil
}

func (s *AuthService) SetJWTCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.jwtExpiry),
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// CookieName exposes the session cookie name to the auth middleware.
func (s *AuthService) CookieName() string {
	return authCookieName
}
