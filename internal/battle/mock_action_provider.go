package battle

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/middleearth/internal/domain"
)

// MockActionProvider is a mock implementation of the ActionProvider interface
type MockActionProvider struct {
	mock.Mock
}

func (m *MockActionProvider) NextAction(ctx context.Context, prompt Prompt) (domain.Action, error) {
	args := m.Called(ctx, prompt)
	return args.Get(0).(domain.Action), args.Error(1)
}
