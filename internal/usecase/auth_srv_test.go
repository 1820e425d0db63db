package usecase_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"artisan-market/internal/data/entity"
	"artisan-market/internal/data/repository"
	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/apperr"
	"artisan-market/pkg/mailer"
	"artisan-market/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var testKey, _ = rsa.GenerateKey(rand.Reader, 2048)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{ExpiryHours: 24, ResetExpiryMins: 15},
		OTP: utils.OTPConfig{ExpiryMinutes: 10, Length: 6},
	}
}

func newAuthService(userRepo *MockUserRepository) usecase.AuthService {
	repo := &repository.Repository{User: userRepo}
	mail := mailer.NewNopPublisher(zap.NewNop())
	return usecase.NewAuthService(repo, testConfig(), mail, testKey, &testKey.PublicKey, zap.NewNop())
}

func verifiedUser(password string) *entity.User {
	hash, _ := utils.HashPassword(password)
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     "maria",
		Email:        "maria@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		Status:       entity.StatusActive,
		VerifiedAt:   &now,
	}
}

func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	req := &request.RegisterRequest{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "password123",
	}

	mockRepo.On("FindByEmail", mock.Anything, req.Email).Return(nil, nil).Once()
	mockRepo.On("FindByUsername", mock.Anything, req.Username).Return(nil, nil).Once()

	var created *entity.User
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil).Once()

	resp, err := svc.Register(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, req.Email, resp.Email)
	assert.Equal(t, entity.RoleCustomer, resp.Role)

	assert.NotNil(t, created)
	assert.NotEqual(t, req.Password, created.PasswordHash, "password must be stored hashed")
	assert.True(t, utils.CheckPasswordHash(req.Password, created.PasswordHash))
	assert.NotNil(t, created.OTP)
	assert.Len(t, *created.OTP, 6)
	assert.Nil(t, created.VerifiedAt)
	assert.Equal(t, entity.StatusActive, created.Status)

	mockRepo.AssertExpectations(t)
}

func TestRegister_ArtisanStartsPending(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	req := &request.RegisterRequest{
		Username: "potter",
		Email:    "potter@example.com",
		Password: "password123",
		Role:     "artisan",
	}

	mockRepo.On("FindByEmail", mock.Anything, req.Email).Return(nil, nil).Once()
	mockRepo.On("FindByUsername", mock.Anything, req.Username).Return(nil, nil).Once()

	var created *entity.User
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil).Once()

	_, err := svc.Register(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleArtisan, created.Role)
	assert.Equal(t, entity.StatusPending, created.Status)
	mockRepo.AssertExpectations(t)
}

func TestRegister_EmailAlreadyRegistered(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	req := &request.RegisterRequest{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "password123",
	}

	mockRepo.On("FindByEmail", mock.Anything, req.Email).Return(verifiedUser("other"), nil).Once()

	resp, err := svc.Register(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "Email already registered", apperr.MessageOf(err))
	mockRepo.AssertNotCalled(t, "Create")
	mockRepo.AssertExpectations(t)
}

func TestRegister_InvalidInput(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	req := &request.RegisterRequest{
		Username: "maria",
		Email:    "not-an-email",
		Password: "short",
	}

	resp, err := svc.Register(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	mockRepo.AssertNotCalled(t, "FindByEmail")
}

func TestVerifyUser_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	otp := "123456"
	expiry := time.Now().Add(10 * time.Minute)
	user := verifiedUser("password123")
	user.VerifiedAt = nil
	user.OTP = &otp
	user.OTPExpiresAt = &expiry

	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()
	mockRepo.On("Update", mock.Anything, user).Return(nil).Once()

	err := svc.VerifyUser(context.Background(), user.ID, &request.VerifyUserRequest{OTP: otp})

	assert.NoError(t, err)
	assert.NotNil(t, user.VerifiedAt)
	assert.Nil(t, user.OTP)
	assert.Nil(t, user.OTPExpiresAt)
	mockRepo.AssertExpectations(t)
}

// OTP length is configurable; codes longer than the default must pass
// request validation and verify.
func TestVerifyUser_NonDefaultOTPLength(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	otp := "12345678"
	expiry := time.Now().Add(10 * time.Minute)
	user := verifiedUser("password123")
	user.VerifiedAt = nil
	user.OTP = &otp
	user.OTPExpiresAt = &expiry

	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()
	mockRepo.On("Update", mock.Anything, user).Return(nil).Once()

	err := svc.VerifyUser(context.Background(), user.ID, &request.VerifyUserRequest{OTP: otp})

	assert.NoError(t, err)
	assert.NotNil(t, user.VerifiedAt)
	mockRepo.AssertExpectations(t)
}

func TestVerifyUser_WrongOTP(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	otp := "123456"
	expiry := time.Now().Add(10 * time.Minute)
	user := verifiedUser("password123")
	user.VerifiedAt = nil
	user.OTP = &otp
	user.OTPExpiresAt = &expiry

	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

	err := svc.VerifyUser(context.Background(), user.ID, &request.VerifyUserRequest{OTP: "654321"})

	assert.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Equal(t, "Invalid OTP", apperr.MessageOf(err))
	assert.Nil(t, user.VerifiedAt)
	mockRepo.AssertNotCalled(t, "Update")
	mockRepo.AssertExpectations(t)
}

func TestVerifyUser_ExpiredOTP(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	otp := "123456"
	expiry := time.Now().Add(-1 * time.Minute)
	user := verifiedUser("password123")
	user.VerifiedAt = nil
	user.OTP = &otp
	user.OTPExpiresAt = &expiry

	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

	err := svc.VerifyUser(context.Background(), user.ID, &request.VerifyUserRequest{OTP: otp})

	assert.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Equal(t, "OTP has expired", apperr.MessageOf(err))
	mockRepo.AssertNotCalled(t, "Update")
	mockRepo.AssertExpectations(t)
}

func TestVerifyUser_AlreadyVerified(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	user := verifiedUser("password123")

	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

	err := svc.VerifyUser(context.Background(), user.ID, &request.VerifyUserRequest{OTP: "123456"})

	assert.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	mockRepo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	user := verifiedUser("password123")
	mockRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)

	claims, err := utils.VerifyToken(resp.Token, &testKey.PublicKey)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, string(user.Role), claims.Role)
	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	user := verifiedUser("password123")
	mockRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	assert.Equal(t, "Invalid email or password", apperr.MessageOf(err))
	mockRepo.AssertExpectations(t)
}

// Unknown e-mail and wrong password must be indistinguishable to the caller.
func TestLogin_UnknownEmailSameMessage(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil).Once()

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	assert.Equal(t, "Invalid email or password", apperr.MessageOf(err))
	mockRepo.AssertExpectations(t)
}

func TestLogin_UnverifiedAccount(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	user := verifiedUser("password123")
	user.VerifiedAt = nil
	mockRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Equal(t, "Please verify your account first", apperr.MessageOf(err))
	mockRepo.AssertExpectations(t)
}

func TestLogin_BannedAccount(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	user := verifiedUser("password123")
	user.Status = entity.StatusBaned
	mockRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	mockRepo.AssertExpectations(t)
}

// ForgetPass must not reveal whether the e-mail exists.
func TestForgetPass_UnknownEmailReturnsNil(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil).Once()

	err := svc.ForgetPass(context.Background(), &request.ForgetPassRequest{Email: "nobody@example.com"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestResetPass_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	user := verifiedUser("old-password")
	token, err := utils.IssueToken(utils.TokenClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   "password_reset",
	}, testKey, 15*time.Minute)
	assert.NoError(t, err)

	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()
	mockRepo.On("Update", mock.Anything, user).Return(nil).Once()

	err = svc.ResetPass(context.Background(), &request.ResetPassRequest{
		Token:       token,
		NewPassword: "new-password",
	})

	assert.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("new-password", user.PasswordHash))
	mockRepo.AssertExpectations(t)
}

// A login token carries the account role, not the reset marker, and must
// never be accepted for a password reset.
func TestResetPass_RejectsLoginToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	user := verifiedUser("old-password")
	token, err := utils.IssueToken(utils.TokenClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
	}, testKey, 15*time.Minute)
	assert.NoError(t, err)

	err = svc.ResetPass(context.Background(), &request.ResetPassRequest{
		Token:       token,
		NewPassword: "new-password",
	})

	assert.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	mockRepo.AssertNotCalled(t, "Update")
}

func TestResetPass_ExpiredToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	token, err := utils.IssueToken(utils.TokenClaims{
		UserID: uuid.NewString(),
		Role:   "password_reset",
	}, testKey, -1*time.Minute)
	assert.NoError(t, err)

	err = svc.ResetPass(context.Background(), &request.ResetPassRequest{
		Token:       token,
		NewPassword: "new-password",
	})

	assert.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	mockRepo.AssertNotCalled(t, "FindByID")
}

func TestUpdatePassword_WrongOldPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	user := verifiedUser("password123")
	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

	err := svc.UpdatePassword(context.Background(), user.ID, &request.UpdatePasswordRequest{
		OldPassword: "wrong-password",
		NewPassword: "new-password",
	})

	assert.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	assert.Equal(t, "Old password is incorrect", apperr.MessageOf(err))
	mockRepo.AssertNotCalled(t, "Update")
	mockRepo.AssertExpectations(t)
}

func TestUpdatePassword_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newAuthService(mockRepo)

	user := verifiedUser("password123")
	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()
	mockRepo.On("Update", mock.Anything, user).Return(nil).Once()

	err := svc.UpdatePassword(context.Background(), user.ID, &request.UpdatePasswordRequest{
		OldPassword: "password123",
		NewPassword: "new-password",
	})

	assert.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("new-password", user.PasswordHash))
	mockRepo.AssertExpectations(t)
}
