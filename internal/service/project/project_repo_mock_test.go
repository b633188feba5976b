package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, project *domain.Project) (*domain.Project, error)
	GetFunc    func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	UpdateFunc func(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
	DeleteFunc func(ctx context.Context, userID, projectID uuid.UUID) error
	ListFunc   func(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)

	calls struct {
		Create []struct {
			UserID  uuid.UUID
			Project *domain.Project
		}
		Get []struct {
			UserID    uuid.UUID
			ProjectID uuid.UUID
		}
		Update []struct {
			UserID    uuid.UUID
			ProjectID uuid.UUID
			Params    domain.ProjectUpdateParams
		}
		Delete []struct {
			UserID    uuid.UUID
			ProjectID uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, userID uuid.UUID, project *domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		UserID  uuid.UUID
		Project *domain.Project
	}{userID, project})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, project)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	UserID  uuid.UUID
	Project *domain.Project
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *projectRepoMock) Get(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	if mock.GetFunc == nil {
		panic("projectRepoMock.GetFunc: method is nil but projectRepo.Get was just called")
	}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		UserID    uuid.UUID
		ProjectID uuid.UUID
	}{userID, projectID})
	mock.lock.Unlock()
	return mock.GetFunc(ctx, userID, projectID)
}

func (mock *projectRepoMock) Update(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID    uuid.UUID
		ProjectID uuid.UUID
		Params    domain.ProjectUpdateParams
	}{userID, projectID, params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, projectID, params)
}

func (mock *projectRepoMock) UpdateCalls() []struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	Params    domain.ProjectUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *projectRepoMock) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID    uuid.UUID
		ProjectID uuid.UUID
	}{userID, projectID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, projectID)
}

func (mock *projectRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		UserID uuid.UUID
	}{userID})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID)
}
