package auth_test

import (
	"testing"
	"time"

	"gearguard-backend/internal/auth"
	apperrors "gearguard-backend/internal/errors"

	"github.com/stretchr/testify/suite"
)

// AuthServiceTestSuite defines the test suite for the mocked credential store
type AuthServiceTestSuite struct {
	suite.Suite
	service *auth.Service
}

// SetupTest sets up the test suite with zero simulated latency
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.service = auth.NewService("test-secret", 0)
}

func (suite *AuthServiceTestSuite) TestSignupReturnsUserAndValidToken() {
	user, token, err := suite.service.Signup("Alex Rivera", "alex@gearguard.io", "hunter22")
	suite.NoError(err)
	suite.NotEmpty(user.ID)
	suite.Equal("alex@gearguard.io", user.Email)
	suite.NotEmpty(token)

	claims, err := suite.service.ValidateJWT(token)
	suite.NoError(err)
	suite.Equal(user.ID, claims.UserID)
	suite.Equal("Alex Rivera", claims.Name)
}

func (suite *AuthServiceTestSuite) TestSignupDuplicateEmailRejected() {
	_, _, err := suite.service.Signup("Alex", "alex@gearguard.io", "hunter22")
	suite.NoError(err)

	_, _, err = suite.service.Signup("Other Alex", "Alex@GearGuard.io", "different")
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *AuthServiceTestSuite) TestLoginRoundTrip() {
	suite.service.Signup("Alex", "alex@gearguard.io", "hunter22")

	user, token, err := suite.service.Login("alex@gearguard.io", "hunter22")
	suite.NoError(err)
	suite.Equal("alex@gearguard.io", user.Email)

	claims, err := suite.service.ValidateJWT(token)
	suite.NoError(err)
	suite.Equal(user.ID, claims.UserID)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	suite.service.Signup("Alex", "alex@gearguard.io", "hunter22")

	_, _, err := suite.service.Login("alex@gearguard.io", "wrong")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, _, err := suite.service.Login("nobody@gearguard.io", "whatever")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestValidateRejectsForeignToken() {
	other := auth.NewService("other-secret", 0)
	_, token, err := other.Signup("Eve", "eve@x.io", "password")
	suite.NoError(err)

	_, err = suite.service.ValidateJWT(token)
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestSimulatedLatencyIsApplied() {
	delayed := auth.NewService("test-secret", 30*time.Millisecond)

	start := time.Now()
	delayed.Signup("Alex", "alex@gearguard.io", "hunter22")
	suite.GreaterOrEqual(time.Since(start), 30*time.Millisecond)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
