package service

import (
	"context"
	"errors"
	"time"

	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"github.com/sokonihq/sokoni/internal/core/utils"
	"go.uber.org/zap"
)

type Service struct {
	repo         port.Repository
	catalog      port.CatalogStore
	gateway      port.PaymentGateway
	scorer       port.RiskScorer
	notifier     port.Notifier
	tokenService port.TokenService
	shipping     *ShippingCalculator
	logger       *zap.Logger

	taxRate decimal.Decimal
	clock   func() time.Time
}

type Option func(*Service)

// WithClock injects the time source, used by payment application and the
// flash-sale paths so tests can pin time.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

func WithTaxRate(rate decimal.Decimal) Option {
	return func(s *Service) { s.taxRate = rate }
}

func NewService(
	repo port.Repository,
	catalog port.CatalogStore,
	gateway port.PaymentGateway,
	scorer port.RiskScorer,
	notifier port.Notifier,
	tokenService port.TokenService,
	shipping *ShippingCalculator,
	logger *zap.Logger,
	opts ...Option,
) (*Service, error) {
	s := &Service{
		repo:         repo,
		catalog:      catalog,
		gateway:      gateway,
		scorer:       scorer,
		notifier:     notifier,
		tokenService: tokenService,
		shipping:     shipping,
		logger:       logger,
		taxRate:      decimal.Zero,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByLogin(ctx, user.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	if user.Role == "" {
		user.Role = domain.RoleCustomer
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, login string, password string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

// notifyUser loads the order owner and runs send. Notification failures are
// logged and swallowed: they never affect order state or the response.
func (s *Service) notifyUser(ctx context.Context, order *domain.Order,
	send func(context.Context, *domain.Order, *domain.User) error) {
	user, err := s.repo.GetUserByID(ctx, order.CustomerID)
	if err != nil {
		s.logger.Warn("Load user for notification",
			zap.String("order", order.ID), zap.Error(err))
		return
	}
	if err := send(ctx, order, user); err != nil {
		s.logger.Warn("Send notification",
			zap.String("order", order.ID), zap.Error(err))
	}
}
