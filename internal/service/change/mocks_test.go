package change

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

var (
	_ changeRepo  = &changeRepoMock{}
	_ projectRepo = &projectRepoMock{}
	_ taskRepo    = &taskRepoMock{}
	_ tagRepo     = &tagRepoMock{}
	_ sharedRepo  = &sharedRepoMock{}
)

type changeRepoMock struct {
	ListFunc          func(ctx context.Context, userID uuid.UUID, sinceID int64) ([]*domain.Change, error)
	GetByChangeIDFunc func(ctx context.Context, userID uuid.UUID, changeID int64) (*domain.Change, error)
	GetLastIDFunc     func(ctx context.Context, userID uuid.UUID) (int64, error)

	calls struct {
		List []struct {
			UserID  uuid.UUID
			SinceID int64
		}
	}
	lock sync.RWMutex
}

func (mock *changeRepoMock) List(ctx context.Context, userID uuid.UUID, sinceID int64) ([]*domain.Change, error) {
	if mock.ListFunc == nil {
		panic("changeRepoMock.ListFunc: method is nil but changeRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		UserID  uuid.UUID
		SinceID int64
	}{userID, sinceID})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID, sinceID)
}

func (mock *changeRepoMock) ListCalls() []struct {
	UserID  uuid.UUID
	SinceID int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *changeRepoMock) GetByChangeID(ctx context.Context, userID uuid.UUID, changeID int64) (*domain.Change, error) {
	if mock.GetByChangeIDFunc == nil {
		panic("changeRepoMock.GetByChangeIDFunc: method is nil but changeRepo.GetByChangeID was just called")
	}
	return mock.GetByChangeIDFunc(ctx, userID, changeID)
}

func (mock *changeRepoMock) GetLastID(ctx context.Context, userID uuid.UUID) (int64, error) {
	if mock.GetLastIDFunc == nil {
		panic("changeRepoMock.GetLastIDFunc: method is nil but changeRepo.GetLastID was just called")
	}
	return mock.GetLastIDFunc(ctx, userID)
}

type projectRepoMock struct {
	GetFunc func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
}

func (mock *projectRepoMock) Get(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	if mock.GetFunc == nil {
		panic("projectRepoMock.GetFunc: method is nil but projectRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID, projectID)
}

type taskRepoMock struct {
	GetFunc func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
}

func (mock *taskRepoMock) Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	if mock.GetFunc == nil {
		panic("taskRepoMock.GetFunc: method is nil but taskRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID, taskID)
}

type tagRepoMock struct {
	GetFunc func(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error)
}

func (mock *tagRepoMock) Get(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error) {
	if mock.GetFunc == nil {
		panic("tagRepoMock.GetFunc: method is nil but tagRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID, tagID)
}

type sharedRepoMock struct {
	GetFunc func(ctx context.Context, userID, sharedID uuid.UUID) (*domain.Shared, error)
}

func (mock *sharedRepoMock) Get(ctx context.Context, userID, sharedID uuid.UUID) (*domain.Shared, error) {
	if mock.GetFunc == nil {
		panic("sharedRepoMock.GetFunc: method is nil but sharedRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID, sharedID)
}
