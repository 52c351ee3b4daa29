package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/medvault/medvault-api/databases"
)

const tokenTTL = 24 * time.Hour

// Claims is the JWT payload. User tokens carry the account ID, doctor and admin tokens
// carry the email.
type Claims struct {
	UserID string `json:"userId,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Middleware verifies bearer tokens and attaches the caller identity to the request
// context. Doctors holds the doctor collection for the doctor variant, which re-derives
// the account from the token's email.
type Middleware struct {
	Secret  string
	Doctors databases.DoctorDatabase
}

// NewUserToken signs a token for a user account
func NewUserToken(secret, userID string) (string, error) {
	return signToken(secret, Claims{UserID: userID})
}

// NewEmailToken signs a token for a doctor or admin identified by email
func NewEmailToken(secret, email string) (string, error) {
	return signToken(secret, Claims{Email: email})
}

func signToken(secret string, claims Claims) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Auth fails closed with a 401 on a missing, malformed or expired token
func (m Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		claims, err := m.verify(r)
		if err != nil {
			zap.S().Warnw("unauthorized", "url", r.URL, "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success": false, "message": "Token is not valid"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

// AuthDoctor additionally re-fetches the doctor record named by the token's email and
// fails if the account no longer exists
func (m Middleware) AuthDoctor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		claims, err := m.verify(r)
		if err != nil {
			zap.S().Warnw("unauthorized", "url", r.URL, "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success": false, "message": "Token is not valid"}`))
			return
		}
		doctor, err := m.Doctors.FindByEmail(r.Context(), claims.Email)
		if err != nil {
			zap.S().Warnw("doctor not found for token", "email", claims.Email)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success": false, "message": "Doctor not found"}`))
			return
		}
		ctx := ContextWithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ContextWithDoctor(ctx, doctor)))
	})
}

func (m Middleware) verify(r *http.Request) (*Claims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, errors.New("no authentication token")
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		return nil, errors.New("malformed authorization header")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
