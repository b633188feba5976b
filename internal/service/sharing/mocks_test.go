package sharing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

var (
	_ sharedRepo   = &sharedRepoMock{}
	_ taskRepo     = &taskRepoMock{}
	_ projectRepo  = &projectRepoMock{}
	_ tagRepo      = &tagRepoMock{}
	_ userRepo     = &userRepoMock{}
	_ changeLogger = &changeLoggerMock{}
	_ txManager    = &txManagerMock{}
)

type sharedRepoMock struct {
	CreateFunc          func(ctx context.Context, userID uuid.UUID, grant *domain.Shared) (*domain.Shared, error)
	GetFunc             func(ctx context.Context, userID, sharedID uuid.UUID) (*domain.Shared, error)
	UpdateFunc          func(ctx context.Context, userID, sharedID uuid.UUID, params domain.SharedUpdateParams) (*domain.Shared, error)
	DeleteFunc          func(ctx context.Context, userID, sharedID uuid.UUID) error
	ListByGrantorFunc   func(ctx context.Context, userID uuid.UUID) ([]*domain.Shared, error)
	ListByRecipientFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Shared, error)

	calls struct {
		Create []struct {
			UserID uuid.UUID
			Grant  *domain.Shared
		}
		ListByGrantor   []struct{ UserID uuid.UUID }
		ListByRecipient []struct{ UserID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *sharedRepoMock) Create(ctx context.Context, userID uuid.UUID, grant *domain.Shared) (*domain.Shared, error) {
	if mock.CreateFunc == nil {
		panic("sharedRepoMock.CreateFunc: method is nil but sharedRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		UserID uuid.UUID
		Grant  *domain.Shared
	}{userID, grant})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, grant)
}

func (mock *sharedRepoMock) CreateCalls() []struct {
	UserID uuid.UUID
	Grant  *domain.Shared
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *sharedRepoMock) Get(ctx context.Context, userID, sharedID uuid.UUID) (*domain.Shared, error) {
	if mock.GetFunc == nil {
		panic("sharedRepoMock.GetFunc: method is nil but sharedRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID, sharedID)
}

func (mock *sharedRepoMock) Update(ctx context.Context, userID, sharedID uuid.UUID, params domain.SharedUpdateParams) (*domain.Shared, error) {
	if mock.UpdateFunc == nil {
		panic("sharedRepoMock.UpdateFunc: method is nil but sharedRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, sharedID, params)
}

func (mock *sharedRepoMock) Delete(ctx context.Context, userID, sharedID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sharedRepoMock.DeleteFunc: method is nil but sharedRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, sharedID)
}

func (mock *sharedRepoMock) ListByGrantor(ctx context.Context, userID uuid.UUID) ([]*domain.Shared, error) {
	if mock.ListByGrantorFunc == nil {
		panic("sharedRepoMock.ListByGrantorFunc: method is nil but sharedRepo.ListByGrantor was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByGrantor = append(mock.calls.ListByGrantor, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.ListByGrantorFunc(ctx, userID)
}

func (mock *sharedRepoMock) ListByGrantorCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByGrantor
}

func (mock *sharedRepoMock) ListByRecipient(ctx context.Context, userID uuid.UUID) ([]*domain.Shared, error) {
	if mock.ListByRecipientFunc == nil {
		panic("sharedRepoMock.ListByRecipientFunc: method is nil but sharedRepo.ListByRecipient was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByRecipient = append(mock.calls.ListByRecipient, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.ListByRecipientFunc(ctx, userID)
}

func (mock *sharedRepoMock) ListByRecipientCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByRecipient
}

type taskRepoMock struct {
	GetFunc           func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	ListByProjectFunc func(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.Task, error)
	ListByTagFunc     func(ctx context.Context, ownerID, tagID uuid.UUID) ([]*domain.Task, error)
}

func (mock *taskRepoMock) Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	if mock.GetFunc == nil {
		panic("taskRepoMock.GetFunc: method is nil but taskRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID, taskID)
}

func (mock *taskRepoMock) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.Task, error) {
	if mock.ListByProjectFunc == nil {
		panic("taskRepoMock.ListByProjectFunc: method is nil but taskRepo.ListByProject was just called")
	}
	return mock.ListByProjectFunc(ctx, ownerID, projectID)
}

func (mock *taskRepoMock) ListByTag(ctx context.Context, ownerID, tagID uuid.UUID) ([]*domain.Task, error) {
	if mock.ListByTagFunc == nil {
		panic("taskRepoMock.ListByTagFunc: method is nil but taskRepo.ListByTag was just called")
	}
	return mock.ListByTagFunc(ctx, ownerID, tagID)
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

type tagRepoMock struct {
	GetFunc func(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error)
}

func (mock *tagRepoMock) Get(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error) {
	if mock.GetFunc == nil {
		panic("tagRepoMock.GetFunc: method is nil but tagRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID, tagID)
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID)
}

type changeLoggerMock struct {
	AppendFunc func(ctx context.Context, userID uuid.UUID, action domain.Action, contentType domain.ContentType, objectID string) (*domain.Change, error)

	calls struct {
		Append []struct {
			UserID      uuid.UUID
			Action      domain.Action
			ContentType domain.ContentType
			ObjectID    string
		}
	}
	lock sync.RWMutex
}

func (mock *changeLoggerMock) Append(ctx context.Context, userID uuid.UUID, action domain.Action, contentType domain.ContentType, objectID string) (*domain.Change, error) {
	if mock.AppendFunc == nil {
		panic("changeLoggerMock.AppendFunc: method is nil but changeLogger.Append was just called")
	}
	mock.lock.Lock()
	mock.calls.Append = append(mock.calls.Append, struct {
		UserID      uuid.UUID
		Action      domain.Action
		ContentType domain.ContentType
		ObjectID    string
	}{userID, action, contentType, objectID})
	mock.lock.Unlock()
	return mock.AppendFunc(ctx, userID, action, contentType, objectID)
}

func (mock *changeLoggerMock) AppendCalls() []struct {
	UserID      uuid.UUID
	Action      domain.Action
	ContentType domain.ContentType
	ObjectID    string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Append
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
