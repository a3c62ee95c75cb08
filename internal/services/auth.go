package services

import (
	"context"
	"fmt"
	"time"

	"github.com/trabajitos-sv/trabajitos-api/internal/auth"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/repos"
	"github.com/trabajitos-sv/trabajitos-api/internal/mailer"
)

// RegisterParams carries a new account request.
type RegisterParams struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	MunicipalityID *uint  `json:"municipality,omitempty"`
}

// Auth provides account registration, login and the password reset flow
type Auth struct {
	userRepo         *repos.UserRepository
	municipalityRepo *repos.MunicipalityRepository
	tokens           *auth.TokenManager
	mail             mailer.Mailer
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repos.UserRepository, municipalityRepo *repos.MunicipalityRepository, tokens *auth.TokenManager, mail mailer.Mailer) *Auth {
	return &Auth{userRepo: userRepo, municipalityRepo: municipalityRepo, tokens: tokens, mail: mail}
}

// Register creates a new account with the standard user role. A municipality,
// when given, must resolve.
func (s *Auth) Register(ctx context.Context, params *RegisterParams) (*models.User, error) {
	if params.MunicipalityID != nil {
		if _, err := s.municipalityRepo.GetByID(ctx, *params.MunicipalityID); err != nil {
			return nil, err
		}
	}

	hashed, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           params.Name,
		Phone:          params.Phone,
		Email:          params.Email,
		HashedPassword: hashed,
		Role:           models.UserRoleUser,
		MunicipalityID: params.MunicipalityID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a fresh access token, rotating
// the user's token list.
func (s *Auth) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !auth.ComparePassword(user.HashedPassword, password) {
		return "", models.ErrInvalidCredential
	}

	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	user.PushToken(token)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return "", fmt.Errorf("failed to persist token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token into the user holding it. The token
// must verify and still be in the user's active list.
func (s *Auth) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if !user.HoldsToken(token) {
		return nil, auth.ErrInvalidToken
	}
	return user, nil
}

// ForgotPassword generates a reset code, stores its hash with a short expiry
// and mails the plain code to the account's address.
func (s *Auth) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, hashed, expires, err := auth.NewResetCode()
	if err != nil {
		return err
	}

	user.PassResetToken = hashed
	user.PassResetExpires = expires
	if err := s.userRepo.Save(ctx, user); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	body := fmt.Sprintf("We have received a password reset request. Use the code below inside the app:\n\n%s\n\nThe code is valid for 10 minutes.", code)
	if err := s.mail.Send(ctx, user.Email, "Password change request", body); err != nil {
		// Roll the code back so a failed delivery does not leave a live code.
		user.PassResetToken = ""
		user.PassResetExpires = 0
		_ = s.userRepo.Save(ctx, user)
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// VerifyResetCode resolves a reset code into the user id it belongs to.
func (s *Auth) VerifyResetCode(ctx context.Context, code string) (uint, error) {
	user, err := s.userRepo.GetByResetToken(ctx, auth.HashResetCode(code), time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// ResetPassword replaces the password of the user identified by a valid
// reset code and invalidates the code and all active tokens.
func (s *Auth) ResetPassword(ctx context.Context, code, password string) error {
	user, err := s.userRepo.GetByResetToken(ctx, auth.HashResetCode(code), time.Now().Unix())
	if err != nil {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user.HashedPassword = hashed
	user.PassResetToken = ""
	user.PassResetExpires = 0
	user.Tokens = nil
	return s.userRepo.Save(ctx, user)
}
