package task

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

var (
	_ taskRepo     = &taskRepoMock{}
	_ projectRepo  = &projectRepoMock{}
	_ tagRepo      = &tagRepoMock{}
	_ changeLogger = &changeLoggerMock{}
	_ txManager    = &txManagerMock{}
)

type taskRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, task *domain.Task) (*domain.Task, error)
	GetFunc    func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	UpdateFunc func(ctx context.Context, userID, taskID uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error)
	DeleteFunc func(ctx context.Context, userID, taskID uuid.UUID) error
	ListFunc   func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	calls struct {
		Create []struct {
			UserID uuid.UUID
			Task   *domain.Task
		}
		Get []struct {
			UserID uuid.UUID
			TaskID uuid.UUID
		}
		Update []struct {
			UserID uuid.UUID
			TaskID uuid.UUID
			Params domain.TaskUpdateParams
		}
		Delete []struct {
			UserID uuid.UUID
			TaskID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *taskRepoMock) Create(ctx context.Context, userID uuid.UUID, task *domain.Task) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		UserID uuid.UUID
		Task   *domain.Task
	}{userID, task})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, task)
}

func (mock *taskRepoMock) CreateCalls() []struct {
	UserID uuid.UUID
	Task   *domain.Task
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *taskRepoMock) Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	if mock.GetFunc == nil {
		panic("taskRepoMock.GetFunc: method is nil but taskRepo.Get was just called")
	}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		UserID uuid.UUID
		TaskID uuid.UUID
	}{userID, taskID})
	mock.lock.Unlock()
	return mock.GetFunc(ctx, userID, taskID)
}

func (mock *taskRepoMock) GetCalls() []struct {
	UserID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Get
}

func (mock *taskRepoMock) Update(ctx context.Context, userID, taskID uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskRepoMock.UpdateFunc: method is nil but taskRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID uuid.UUID
		TaskID uuid.UUID
		Params domain.TaskUpdateParams
	}{userID, taskID, params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, taskID, params)
}

func (mock *taskRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	TaskID uuid.UUID
	Params domain.TaskUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *taskRepoMock) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID uuid.UUID
		TaskID uuid.UUID
	}{userID, taskID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, taskID)
}

func (mock *taskRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskRepoMock.ListFunc: method is nil but taskRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID)
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
