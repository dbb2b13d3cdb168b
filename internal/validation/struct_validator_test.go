package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/middleearth/internal/domain"
)

type spawnTable struct {
	Region string  `validate:"required,region"`
	Min    int     `validate:"gte=0"`
	Max    int     `validate:"gtefield=Min"`
	Chance float64 `validate:"gte=0,lte=1"`
}

func TestStructValidator_ValidateStruct(t *testing.T) {
	v := NewStructValidator()

	tests := []struct {
		name     string
		input    spawnTable
		wantErr  bool
		contains string
	}{
		{name: "valid", input: spawnTable{Region: "rohan", Min: 1, Max: 3, Chance: 0.5}},
		{name: "display form region", input: spawnTable{Region: "High Pass", Min: 0, Max: 0}},
		{name: "missing region", input: spawnTable{Min: 1, Max: 2}, wantErr: true, contains: "region: is required"},
		{name: "unknown region", input: spawnTable{Region: "valinor"}, wantErr: true, contains: `unknown region "valinor"`},
		{name: "max below min", input: spawnTable{Region: "gondor", Min: 3, Max: 1}, wantErr: true, contains: "max: must not be less than min"},
		{name: "chance above one", input: spawnTable{Region: "gondor", Chance: 2}, wantErr: true, contains: "chance: must be at most 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestStructs_Shared(t *testing.T) {
	assert.Same(t, Structs(), Structs())
}
