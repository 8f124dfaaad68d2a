package server

import (
	"context"

	"github.com/energyadvisor/energyadvisor/pkg/types"
	"github.com/stretchr/testify/mock"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) CreateSession(ctx context.Context, session types.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockStorage) GetSession(ctx context.Context, id string) (types.Session, error) {
	args := m.Called(ctx, id)
	// return empty if not specified, or checks args
	if len(args) > 0 {
		return args.Get(0).(types.Session), args.Error(1)
	}
	return types.Session{}, nil
}

func (m *mockStorage) UpdateAppliances(ctx context.Context, id string, appliances []types.ApplianceRecord) error {
	args := m.Called(ctx, id, appliances)
	return args.Error(0)
}

func (m *mockStorage) UpdateBill(ctx context.Context, id string, bill types.BillRecord) error {
	args := m.Called(ctx, id, bill)
	return args.Error(0)
}

func (m *mockStorage) DeleteSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStorage) ListSessions(ctx context.Context) ([]types.Session, error) {
	args := m.Called(ctx)
	if len(args) > 0 {
		return args.Get(0).([]types.Session), args.Error(1)
	}
	return nil, nil
}

func (m *mockStorage) Close() error {
	args := m.Called()
	return args.Error(0)
}
