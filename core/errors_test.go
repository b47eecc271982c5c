package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorHelpers(t *testing.T) {
	err := Errorf(ModuleVector, ErrorCodeDimensionMismatch, "add: %d != %d", 2, 3)
	assert.Equal(t, "vector: add: 2 != 3", err.Error())

	wrapped := fmt.Errorf("psi: %w", err)
	assert.True(t, IsDomainError(wrapped))
	assert.True(t, IsDimensionMismatch(wrapped))
	assert.False(t, IsIndexOutOfRange(wrapped))
	assert.False(t, IsNotSupported(wrapped))
	assert.False(t, IsInvalidInput(wrapped))
	assert.Equal(t, ModuleVector, GetDomainError(wrapped).Module)

	plain := errors.New("boom")
	assert.False(t, IsDomainError(plain))
	assert.Nil(t, GetDomainError(plain))
	assert.False(t, IsNotSupported(nil))
}

func TestDomainErrorIs(t *testing.T) {
	sentinel := NewDomainError(ModuleInstantiation, ErrorCodeNotSupported, "no enumeration")
	other := NewDomainError(ModuleInstantiation, ErrorCodeNotSupported, "different message")

	assert.True(t, errors.Is(fmt.Errorf("wrap: %w", other), sentinel))
	assert.False(t, errors.Is(NewDomainError(ModuleMetrics, ErrorCodeNotSupported, ""), sentinel))
	assert.False(t, errors.Is(errors.New("x"), sentinel))
}

func TestItemPutLabel(t *testing.T) {
	it := NewItem("a", []float64{1})
	it.PutLabel("relevant", "1")
	it.PutLabel("relevant", "0")
	assert.Equal(t, "1|0", it.Labels["relevant"])

	it.PutLabel("relevant", "")
	assert.Equal(t, "1|0", it.Labels["relevant"])

	it.PutLabel("empty", "")
	assert.Equal(t, "", it.Labels["empty"])

	var bare Item
	bare.PutLabel("k", "v")
	assert.Equal(t, "v", bare.Labels["k"])
}
