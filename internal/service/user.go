package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mmeshcher/restaurant-backoffice/internal/metrics"
	"github.com/mmeshcher/restaurant-backoffice/internal/model"
	"github.com/mmeshcher/restaurant-backoffice/internal/repository"
)

// UserRepository описывает контракт доступа к пользователям, используемый сервисом.
type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUsers(ctx context.Context) ([]model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
}

// UserService содержит бизнес-логику работы с учётными записями.
type UserService struct {
	repo    UserRepository
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewUserService создаёт сервис пользователей. Метрики допускают nil.
func NewUserService(repo UserRepository, logger *zap.Logger, m *metrics.Metrics) *UserService {
	return &UserService{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

// Create создаёт нового пользователя. Email обязателен и должен быть
// уникален. Проверка уникальности — два независимых обращения к хранилищу
// (exists, затем save) без изоляции; гонка параллельных создателей
// перехватывается уникальным индексом на уровне БД.
func (s *UserService) Create(ctx context.Context, user model.User) (model.User, error) {
	s.logger.Info("creating user", zap.String("email", user.Email))

	if strings.TrimSpace(user.Email) == "" {
		s.logger.Warn("user creation failed: email is missing")
		return model.User{}, ErrEmailRequired
	}

	exists, err := s.repo.UserExistsByEmail(ctx, user.Email)
	if err != nil {
		return model.User{}, err
	}
	if exists {
		s.logger.Warn("user creation failed: duplicate email", zap.String("email", user.Email))
		return model.User{}, repository.ErrUserExists
	}

	saved, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return model.User{}, err
	}

	s.metrics.RecordUserCreated()

	s.logger.Info("user created", zap.Int64("id", saved.ID))
	return saved, nil
}

// GetAll возвращает всех пользователей.
func (s *UserService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.repo.GetUsers(ctx)
}

// GetByEmail возвращает пользователя по email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("user lookup failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Authenticate сверяет пароль пользователя по точному совпадению.
// Неизвестный email отдаётся как ErrUserNotFound, неверный пароль —
// как ErrInvalidCredentials; виды ошибок различимы намеренно.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	s.logger.Info("authenticating user", zap.String("email", email))

	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.Password != password {
		s.logger.Warn("authentication failed: invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user authenticated", zap.String("email", email))
	return user, nil
}
