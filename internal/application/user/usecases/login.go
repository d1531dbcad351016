package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/gestio-app/gestio/internal/application/user/dto"
	"github.com/gestio-app/gestio/internal/domain/user"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

// TokenIssuer mints access tokens for authenticated operators.
type TokenIssuer interface {
	Issue(userID uint, email string) (token string, expiresAt time.Time, err error)
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) error
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	tokens   TokenIssuer
	password PasswordVerifier
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	tokens TokenIssuer,
	password PasswordVerifier,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		password: password,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResultDTO, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			// same response as a wrong password so accounts cannot be enumerated
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		uc.logger.Errorw("failed to load user", "error", err)
		return nil, apperrors.NewInternalError("failed to load user")
	}

	if err := uc.password.Verify(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := uc.tokens.Issue(u.ID(), u.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, apperrors.NewInternalError("failed to issue token")
	}

	u.RecordLogin(time.Now().UTC())
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record login time", "error", err, "user_id", u.ID())
	}

	uc.logger.Infow("operator logged in", "user_id", u.ID())
	return &dto.LoginResultDTO{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserDTO(u),
	}, nil
}
