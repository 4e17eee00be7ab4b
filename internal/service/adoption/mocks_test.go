package adoption_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pawhaven/internal/domain"
)

type adoptionRepoMock struct {
	mock.Mock
}

func (m *adoptionRepoMock) Create(ctx context.Context, req *domain.AdoptionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *adoptionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdoptionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdoptionRequest), args.Error(1)
}

func (m *adoptionRepoMock) ListAll(ctx context.Context) ([]domain.AdoptionRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdoptionRequest), args.Error(1)
}

func (m *adoptionRepoMock) ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.AdoptionRequest, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdoptionRequest), args.Error(1)
}

func (m *adoptionRepoMock) UpdateDecision(ctx context.Context, id uuid.UUID, status domain.AdoptionStatus, adminMessage string) (bool, error) {
	args := m.Called(ctx, id, status, adminMessage)
	return args.Bool(0), args.Error(1)
}

func (m *adoptionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type petRepoMock struct {
	mock.Mock
}

func (m *petRepoMock) Create(ctx context.Context, pet *domain.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *petRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *petRepoMock) List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pet), args.Error(1)
}

func (m *petRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type notificationServiceMock struct {
	mock.Mock
}

func (m *notificationServiceMock) Create(ctx context.Context, input domain.CreateNotificationInput) (*domain.Notification, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *notificationServiceMock) Broadcast(ctx context.Context, title, message string) (*domain.Notification, error) {
	args := m.Called(ctx, title, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *notificationServiceMock) ListAll(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *notificationServiceMock) ListForUser(ctx context.Context, rawUserID string) ([]domain.Notification, error) {
	args := m.Called(ctx, rawUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *notificationServiceMock) UnreadCount(ctx context.Context, rawUserID string) (int64, error) {
	args := m.Called(ctx, rawUserID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *notificationServiceMock) Update(ctx context.Context, id uuid.UUID, input domain.UpdateNotificationInput) (*domain.Notification, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *notificationServiceMock) ToggleRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *notificationServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type emailServiceMock struct {
	mock.Mock
}

func (m *emailServiceMock) SendAdoptionDecisionEmail(ctx context.Context, toEmail, fullName, petName string, status domain.AdoptionStatus, adminMessage string) error {
	args := m.Called(ctx, toEmail, fullName, petName, status, adminMessage)
	return args.Error(0)
}
