package security

import (
	"testing"
	"time"

	"github.com/fridgewise/v1/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	service *TokenService
	userID  uuid.UUID
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.service = NewTokenService(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "test-secret-at-least-32-characters-long",
			Issuer:    "fridgewise-auth",
		},
	})
	s.userID = uuid.New()
}

func (s *TokenServiceTestSuite) signToken(secret string, claims jwt.Claims, method jwt.SigningMethod) string {
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(secret))
	s.Require().NoError(err)
	return signed
}

func (s *TokenServiceTestSuite) validClaims() jwtClaims {
	return jwtClaims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.userID.String(),
			Issuer:    "fridgewise-auth",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func (s *TokenServiceTestSuite) TestValidateToken() {
	token := s.signToken("test-secret-at-least-32-characters-long", s.validClaims(), jwt.SigningMethodHS256)

	claims, err := s.service.ValidateToken(token)

	s.Require().NoError(err)
	s.Equal(s.userID, claims.UserID)
	s.Equal("user@example.com", claims.Email)
}

func (s *TokenServiceTestSuite) TestExpiredToken() {
	claims := s.validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	token := s.signToken("test-secret-at-least-32-characters-long", claims, jwt.SigningMethodHS256)

	_, err := s.service.ValidateToken(token)

	s.Require().Error(err)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestWrongSecret() {
	token := s.signToken("a-completely-different-signing-secret!!", s.validClaims(), jwt.SigningMethodHS256)

	_, err := s.service.ValidateToken(token)

	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestWrongIssuer() {
	claims := s.validClaims()
	claims.Issuer = "someone-else"
	token := s.signToken("test-secret-at-least-32-characters-long", claims, jwt.SigningMethodHS256)

	_, err := s.service.ValidateToken(token)

	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestNonUUIDSubject() {
	claims := s.validClaims()
	claims.Subject = "admin"
	token := s.signToken("test-secret-at-least-32-characters-long", claims, jwt.SigningMethodHS256)

	_, err := s.service.ValidateToken(token)

	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestRejectsUnexpectedSigningMethod() {
	// HS512 signatures must be rejected even with the right secret
	token := s.signToken("test-secret-at-least-32-characters-long", s.validClaims(), jwt.SigningMethodHS512)

	_, err := s.service.ValidateToken(token)

	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestGarbageToken() {
	_, err := s.service.ValidateToken("not.a.jwt")
	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidToken)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
