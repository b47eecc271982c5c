package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/rankssvm/core"
)

func TestAddSubtract(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float64
		wantAdd []float64
		wantSub []float64
		wantErr bool
	}{
		{
			name:    "same dimension",
			a:       []float64{1, 2, 3},
			b:       []float64{0.5, -2, 4},
			wantAdd: []float64{1.5, 0, 7},
			wantSub: []float64{0.5, 4, -1},
		},
		{
			name:    "empty vectors",
			a:       []float64{},
			b:       []float64{},
			wantAdd: []float64{},
			wantSub: []float64{},
		},
		{
			name:    "dimension mismatch",
			a:       []float64{1, 2},
			b:       []float64{1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := Add(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, core.IsDimensionMismatch(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantAdd, sum)
			}

			diff, err := Subtract(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, core.IsDimensionMismatch(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, diff)
		})
	}
}

func TestAddDoesNotMutateInputs(t *testing.T) {
	a := []float64{1, 1}
	b := []float64{2, 2}
	_, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, a)
	assert.Equal(t, []float64{2, 2}, b)
}

func TestScale(t *testing.T) {
	v := []float64{1, -2, 0}
	assert.Equal(t, []float64{-1, 2, 0}, Scale(v, -1))
	assert.Equal(t, []float64{0, 0, 0}, Scale(v, 0))
	assert.Equal(t, []float64{1, -2, 0}, v)
}

func TestDot(t *testing.T) {
	got, err := Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, got)

	_, err = Dot([]float64{1}, []float64{1, 2})
	assert.True(t, core.IsDimensionMismatch(err))
}

func TestAddScaledInPlace(t *testing.T) {
	dst := []float64{1, 1}
	require.NoError(t, AddScaledInPlace(dst, []float64{2, -3}, -1))
	assert.Equal(t, []float64{-1, 4}, dst)

	err := AddScaledInPlace(dst, []float64{1}, 1)
	assert.True(t, core.IsDimensionMismatch(err))
}

func TestCheckDimensions(t *testing.T) {
	require.NoError(t, CheckDimensions([][]float64{{1, 2}, {3, 4}}, 2))

	err := CheckDimensions([][]float64{{1, 2}, {3}}, 2)
	require.Error(t, err)
	assert.True(t, core.IsDimensionMismatch(err))
	assert.Contains(t, err.Error(), "vector 1")
}
