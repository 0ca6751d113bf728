package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/mq"
	"file-vault-api/internal/interface/api/rest/dto/user"
)

// ~100ms per hash; matches bcrypt.DefaultCost.
const bcryptCost = 10

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// RegisterUser hashes the raw password and inserts the row. The raw password
// is never stored or returned; a duplicate username surfaces as
// user.ErrUsernameTaken from the repository.
func (us *UserService) RegisterUser(ctx context.Context, username, rawPassword string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcryptCost)
	if err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.CreateUser(ctx, username, string(hash))
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionUserRegistered,
			UserID:  uRet.UUID.String(),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return uRet, nil
}

func (us *UserService) FindUserByUUID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return u, nil
}
