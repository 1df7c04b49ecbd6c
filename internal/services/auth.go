package services

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"betblitz-backend/internal/models"
)

// Mailer delivers verification and reset codes. Real delivery is an
// external concern; the default implementation just logs.
type Mailer interface {
	SendCode(email, code, purpose string) error
}

type LogMailer struct{}

func (LogMailer) SendCode(email, code, purpose string) error {
	log.Printf("[EMAIL] to=%s purpose=%s code=%s", email, purpose, code)
	return nil
}

type AuthService struct {
	users  UserStore
	ledger Ledger
	tokens *JWTService
	mailer Mailer
}

func NewAuthService(users UserStore, ledger Ledger, tokens *JWTService, mailer Mailer) *AuthService {
	return &AuthService{
		users:  users,
		ledger: ledger,
		tokens: tokens,
		mailer: mailer,
	}
}

// Register creates an unverified user and issues a 6-digit code. The code
// is returned so dev mode can surface it without a working mailer.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	code, err := models.NewVerificationCode()
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:               models.NewUserID(),
		Username:         username,
		Email:            email,
		PasswordHash:     string(hash),
		Verified:         false,
		VerificationCode: code,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	// Delivery failure must not fail registration; the code is still
	// retrievable through the reset flow.
	if err := s.mailer.SendCode(email, code, "Activate Account"); err != nil {
		log.Printf("verification email failed for %s: %v", email, err)
	}

	return user, code, nil
}

// Verify checks the activation code and marks the account verified.
func (s *AuthService) Verify(ctx context.Context, userID, code string) error {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.Verified {
		return nil
	}
	if user.VerificationCode == "" || user.VerificationCode != code {
		return ErrInvalidCode
	}

	user.Verified = true
	user.VerificationCode = ""
	return s.users.UpdateUser(ctx, user)
}

// Login checks credentials and verification state, then issues a JWT.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.Verified {
		return user, "", ErrNotVerified
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ForgotPassword issues a reset code. Whether the account exists is not
// disclosed to the caller.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil
	}

	code, err := models.NewVerificationCode()
	if err != nil {
		return err
	}

	user.VerificationCode = code
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return err
	}

	if err := s.mailer.SendCode(email, code, "Reset Password"); err != nil {
		log.Printf("reset email failed for %s: %v", email, err)
	}
	return nil
}

// ResetPassword swaps the password after a code check. A successful reset
// also proves email ownership, so the account comes out verified.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.VerificationCode == "" || user.VerificationCode != code {
		return ErrInvalidCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.VerificationCode = ""
	user.Verified = true
	return s.users.UpdateUser(ctx, user)
}
