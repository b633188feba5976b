package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

var (
	_ userRepo   = &userRepoMock{}
	_ tokenRepo  = &tokenRepoMock{}
	_ jwtManager = &jwtManagerMock{}
)

type userRepoMock struct {
	CreateFunc     func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)

	calls struct {
		Create []struct{ User *domain.User }
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User *domain.User }{user})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct{ User *domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID)
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	return mock.GetByEmailFunc(ctx, email)
}

type tokenRepoMock struct {
	CreateFunc          func(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHashFunc       func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeFunc          func(ctx context.Context, tokenID uuid.UUID) error
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc   func(ctx context.Context) (int64, error)

	calls struct {
		Create []struct {
			UserID    uuid.UUID
			TokenHash string
		}
		Revoke          []struct{ TokenID uuid.UUID }
		RevokeAllByUser []struct{ UserID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		UserID    uuid.UUID
		TokenHash string
	}{userID, tokenHash})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, tokenHash, expiresAt)
}

func (mock *tokenRepoMock) CreateCalls() []struct {
	UserID    uuid.UUID
	TokenHash string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	if mock.RevokeFunc == nil {
		panic("tokenRepoMock.RevokeFunc: method is nil but tokenRepo.Revoke was just called")
	}
	mock.lock.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, struct{ TokenID uuid.UUID }{tokenID})
	mock.lock.Unlock()
	return mock.RevokeFunc(ctx, tokenID)
}

func (mock *tokenRepoMock) RevokeCalls() []struct{ TokenID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Revoke
}

func (mock *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RevokeAllByUserFunc == nil {
		panic("tokenRepoMock.RevokeAllByUserFunc: method is nil but tokenRepo.RevokeAllByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.RevokeAllByUser = append(mock.calls.RevokeAllByUser, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.RevokeAllByUserFunc(ctx, userID)
}

func (mock *tokenRepoMock) RevokeAllByUserCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RevokeAllByUser
}

func (mock *tokenRepoMock) DeleteExpired(ctx context.Context) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	return mock.DeleteExpiredFunc(ctx)
}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID) (string, error)
	GenerateRefreshTokenFunc func() (string, string, error)
	HashTokenFunc            func(raw string) string
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	return mock.GenerateAccessTokenFunc(userID)
}

func (mock *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if mock.GenerateRefreshTokenFunc == nil {
		panic("jwtManagerMock.GenerateRefreshTokenFunc: method is nil but jwtManager.GenerateRefreshToken was just called")
	}
	return mock.GenerateRefreshTokenFunc()
}

func (mock *jwtManagerMock) HashToken(raw string) string {
	if mock.HashTokenFunc == nil {
		panic("jwtManagerMock.HashTokenFunc: method is nil but jwtManager.HashToken was just called")
	}
	return mock.HashTokenFunc(raw)
}
