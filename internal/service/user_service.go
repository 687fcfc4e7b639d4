package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"account-api/internal/domain"
	"account-api/internal/repository"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameTaken      = errors.New("username is not unique")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService coordina el ciclo de vida de cuentas de usuario.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
	hasher PasswordHasher
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, hasher PasswordHasher) *UserService {
	if hasher == nil {
		hasher = NewBcryptHasher()
	}
	return &UserService{
		logger: logger,
		users:  users,
		hasher: hasher,
	}
}

type CreateUserInput struct {
	Username string
	Password string
}

// UpdateUserInput modela un patch parcial: un campo nil queda sin tocar.
type UpdateUserInput struct {
	Username  *string
	BirthDate *domain.Date
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// CreateUser registra una cuenta nueva. El chequeo de unicidad previo a la
// escritura controla el error devuelto; el índice único de la tabla cubre la
// carrera entre escritores concurrentes.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (domain.User, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Password) == "" {
		return domain.User{}, ErrInvalidInput
	}

	_, err := s.users.FindByUsername(ctx, input.Username)
	if err == nil {
		return domain.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		Username:     input.Username,
		DisplayName:  input.Username,
		PasswordHash: passwordHash,
		Status:       domain.StatusOnline,
		Token:        uuid.NewString(),
		CreationDate: domain.Today(),
	}

	created, err := s.users.Save(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}
	if err := s.users.Flush(ctx); err != nil {
		return domain.User{}, err
	}

	s.logger.Debug("created user",
		zap.Int64("id", created.ID),
		zap.String("username", created.Username),
	)
	return created, nil
}

// LoginUser valida credenciales y marca la cuenta como ONLINE. Usuario
// inexistente y contraseña incorrecta devuelven el mismo error para no
// permitir enumerar usernames.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}

	user.Status = domain.StatusOnline
	return s.users.Save(ctx, user)
}

// LogoutUser marca la cuenta como OFFLINE. Es idempotente.
func (s *UserService) LogoutUser(ctx context.Context, userID int64) error {
	user, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Status = domain.StatusOffline
	_, err = s.users.Save(ctx, user)
	return err
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	return s.getByID(ctx, userID)
}

func (s *UserService) UpdateUserBirthDate(ctx context.Context, userID int64, birthDate *domain.Date) error {
	user, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}
	if birthDate == nil {
		return ErrInvalidInput
	}
	user.BirthDate = birthDate
	_, err = s.users.Save(ctx, user)
	return err
}

// UpdateUser aplica un patch parcial sobre username y fecha de nacimiento.
// No repite el chequeo rápido de unicidad en renombres; un choque contra el
// índice único igual se traduce a ErrUsernameTaken.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, input UpdateUserInput) error {
	user, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}

	if input.Username != nil && *input.Username != "" {
		user.Username = *input.Username
	}
	if input.BirthDate != nil {
		user.BirthDate = input.BirthDate
	}

	if _, err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (s *UserService) getByID(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
