package session

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradesage/tradesage-client/authapi"
)

const (
	demoTokenIssuer = "tradesage-demo"
	demoAccessTTL   = time.Hour
	demoRefreshTTL  = 24 * time.Hour
)

// demoIdentity is the fixed offline identity. The password is held only as a
// bcrypt hash and the tokens it mints are local HS256 JWTs signed with a
// per-process secret, so expiry handling matches real backend tokens.
type demoIdentity struct {
	email        string
	passwordHash string
	secret       []byte
	user         authapi.User
}

func newDemoIdentity(email, password string) (*demoIdentity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "[newDemoIdentity] hash password")
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, errors.Wrap(err, "[newDemoIdentity] signing secret")
	}
	return &demoIdentity{
		email:        email,
		passwordHash: string(hash),
		secret:       secret,
		user: authapi.User{
			ID:        uuid.New().String(),
			Email:     email,
			FirstName: "Demo",
			LastName:  "User",
			UserType:  authapi.UserTypeUser,
		},
	}, nil
}

func (d *demoIdentity) matches(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), d.email)
}

func (d *demoIdentity) checkPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(d.passwordHash), []byte(password)) == nil
}

// mintState builds a fully local session without contacting the backend.
func (d *demoIdentity) mintState(now time.Time) (*State, error) {
	access, err := d.mintToken(now, demoAccessTTL, "access")
	if err != nil {
		return nil, errors.Wrap(err, "[demoIdentity.mintState] access token")
	}
	refresh, err := d.mintToken(now, demoRefreshTTL, "refresh")
	if err != nil {
		return nil, errors.Wrap(err, "[demoIdentity.mintState] refresh token")
	}
	user := d.user
	return &State{User: &user, Token: access, RefreshToken: refresh}, nil
}

func (d *demoIdentity) mintToken(now time.Time, ttl time.Duration, use string) (string, error) {
	claims := jwt.MapClaims{
		"iss":   demoTokenIssuer,
		"sub":   d.user.ID,
		"email": d.user.Email,
		"use":   use,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.secret)
}
