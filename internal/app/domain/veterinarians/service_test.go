package veterinarians

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/models"
	"github.com/SoYuDev/petalth-crm/internal/petalth"
)

type MockVetAPI struct {
	mock.Mock
}

func (m *MockVetAPI) Veterinarians(ctx context.Context) ([]petalth.Veterinarian, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]petalth.Veterinarian), args.Error(1)
}

func TestService_List(t *testing.T) {
	roster := []petalth.Veterinarian{
		{ID: 1, Name: "Dr. Ruiz", Speciality: "Surgery"},
		{ID: 2, Name: "Dr. Vela", Speciality: "Dermatology"},
	}

	t.Run("CacheHitSkipsSecondFetch", func(t *testing.T) {
		api := new(MockVetAPI)
		api.On("Veterinarians", mock.Anything).Return(roster, nil).Once()

		svc := NewService(api, 5*time.Minute, zap.NewNop())

		first, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, first, 2)

		second, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, second)

		api.AssertNumberOfCalls(t, "Veterinarians", 1)
	})

	t.Run("ErrorIsNotCached", func(t *testing.T) {
		api := new(MockVetAPI)
		api.On("Veterinarians", mock.Anything).Return(nil, models.ErrNotFound).Once()
		api.On("Veterinarians", mock.Anything).Return(roster, nil).Once()

		svc := NewService(api, 5*time.Minute, zap.NewNop())

		_, err := svc.List(context.Background())
		require.Error(t, err)

		got, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)

		api.AssertNumberOfCalls(t, "Veterinarians", 2)
	})
}
