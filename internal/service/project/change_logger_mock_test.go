package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

var _ changeLogger = &changeLoggerMock{}

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
