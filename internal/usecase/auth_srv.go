package usecase

import (
	"context"
	"crypto/rsa"
	"time"

	"artisan-market/internal/data/entity"
	"artisan-market/internal/data/repository"
	"artisan-market/internal/dto/request"
	"artisan-market/internal/dto/response"
	"artisan-market/pkg/apperr"
	"artisan-market/pkg/mailer"
	"artisan-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// rolePasswordReset marks a short-lived token that can only reset a password,
// never authenticate a request.
const rolePasswordReset = "password_reset"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	VerifyUser(ctx context.Context, userID uuid.UUID, req *request.VerifyUserRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ForgetPass(ctx context.Context, req *request.ForgetPassRequest) error
	ResetPass(ctx context.Context, req *request.ResetPassRequest) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error
}

type authService struct {
	repo       *repository.Repository
	config     *utils.Config
	mail       mailer.Publisher
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	log        *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Publisher,
	privateKey *rsa.PrivateKey,
	publicKey *rsa.PublicKey,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:       repo,
		config:     config,
		mail:       mail,
		privateKey: privateKey,
		publicKey:  publicKey,
		log:        log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Fast-path duplicate checks. The unique constraints in the store are
	// the real enforcement point; these only produce friendlier errors.
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("Failed to check email", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already registered")
	}

	existing, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperr.Internal("Failed to check username", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Username already taken")
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("Failed to process password", err)
	}

	// 4. Generate the verification OTP
	otp := utils.GenerateOTP(s.config.OTP.Length)
	otpExpiry := time.Now().Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	// 5. Build the user entity
	role := entity.RoleCustomer
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Mobile:       req.Mobile,
		Role:         role,
		Status:       entity.StatusActive,
		OTP:          &otp,
		OTPExpiresAt: &otpExpiry,
	}
	user.ApplyRoleStatusRule()

	// 6. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, err
		}
		return nil, apperr.Internal("Failed to create account", err)
	}

	// 7. Publish the verification mail event. Fire-and-forget: the broker
	// being down must not fail registration.
	go s.publishMail(mailer.Message{
		Type:     mailer.TypeVerifyEmail,
		To:       user.Email,
		FullName: user.DisplayName(),
		OTP:      otp,
	})

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) VerifyUser(ctx context.Context, userID uuid.UUID, req *request.VerifyUserRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Load the account
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return apperr.Internal("Failed to load user", err)
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}
	if user.IsVerified() {
		return apperr.Conflict("Account is already verified")
	}

	// 3. Check the OTP
	if user.OTP == nil || *user.OTP != req.OTP {
		return apperr.InvalidInput("Invalid OTP")
	}
	if user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		return apperr.InvalidInput("OTP has expired")
	}

	// 4. Mark verified, clear the OTP
	now := time.Now()
	user.VerifiedAt = &now
	user.OTP = nil
	user.OTPExpiresAt = nil
	user.UpdatedAt = now

	if err := s.repo.User.Update(ctx, user); err != nil {
		return apperr.Internal("Failed to verify account", err)
	}

	s.log.Info("User verified", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Load by email. Wrong email and wrong password must be
	// indistinguishable to the caller.
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("Failed to load user", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// 3. Account gates
	if !user.IsVerified() {
		return nil, apperr.Forbidden("Please verify your account first")
	}
	if !user.CanLogin() {
		return nil, apperr.Forbidden("Account is not allowed to login")
	}

	// 4. Issue the bearer token
	ttl := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	claims := utils.TokenClaims{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Role:     string(user.Role),
		FullName: user.DisplayName(),
	}
	if user.GoogleID != nil {
		claims.GoogleID = *user.GoogleID
	}

	token, err := utils.IssueToken(claims, s.privateKey, ttl)
	if err != nil {
		return nil, apperr.Internal("Failed to issue token", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, token, time.Now().Add(ttl))
	return &resp, nil
}

// ForgetPass responds identically whether or not the e-mail exists, so the
// endpoint cannot be used to probe for accounts.
func (s *authService) ForgetPass(ctx context.Context, req *request.ForgetPassRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Look up the account
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return apperr.Internal("Failed to load user", err)
	}
	if user == nil {
		s.log.Info("Password reset requested for unknown email")
		return nil
	}

	// 3. Issue a short-lived reset token
	ttl := time.Duration(s.config.JWT.ResetExpiryMins) * time.Minute
	token, err := utils.IssueToken(utils.TokenClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   rolePasswordReset,
	}, s.privateKey, ttl)
	if err != nil {
		return apperr.Internal("Failed to issue reset token", err)
	}

	go s.publishMail(mailer.Message{
		Type:     mailer.TypeResetPassword,
		To:       user.Email,
		FullName: user.DisplayName(),
		Token:    token,
	})

	s.log.Info("Password reset requested", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) ResetPass(ctx context.Context, req *request.ResetPassRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Verify the reset token. A login token must not pass here.
	claims, err := utils.VerifyToken(req.Token, s.publicKey)
	if err != nil {
		return apperr.Unauthorized("Invalid or expired reset token")
	}
	if claims.Role != rolePasswordReset {
		return apperr.Unauthorized("Invalid or expired reset token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return apperr.Unauthorized("Invalid or expired reset token")
	}

	// 3. Load the account
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return apperr.Internal("Failed to load user", err)
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}

	// 4. Store the new password
	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return apperr.Internal("Failed to process password", err)
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return apperr.Internal("Failed to reset password", err)
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Load the account
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return apperr.Internal("Failed to load user", err)
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}

	// 3. The old password must match before anything changes
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperr.Unauthorized("Old password is incorrect")
	}

	// 4. Store the new password
	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return apperr.Internal("Failed to process password", err)
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return apperr.Internal("Failed to update password", err)
	}

	s.log.Info("Password changed", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) publishMail(msg mailer.Message) {
	if err := s.mail.Publish(msg); err != nil {
		s.log.Error("Failed to publish mail event",
			zap.Error(err),
			zap.String("type", msg.Type),
		)
	}
}
