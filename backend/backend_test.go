package backend

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolvesCPUByDefault(t *testing.T) {
	r := NewRegistry()
	b, err := r.Resolve(Config{})
	require.NoError(t, err)
	assert.Equal(t, "cpu", b.Name())
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Get("gpu")
	assert.False(t, ok)
}

func TestRegistryResolveFailsWithoutCPUBackend(t *testing.T) {
	r := &Registry{backends: map[string]Backend{}}
	_, err := r.Resolve(Config{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCPUInPlaceVisitsEveryIndex(t *testing.T) {
	c := NewCPU()
	var hits [100]int32
	c.InPlace(100, func(i uint64) { atomic.AddInt32(&hits[i], 1) })
	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestCPUCopyOutVisitsEveryIndex(t *testing.T) {
	c := NewCPU()
	var hits [100]int32
	c.CopyOut(100, func(i uint64) { atomic.AddInt32(&hits[i], 1) })
	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestCPURegisterRotateVisitsEveryOther(t *testing.T) {
	c := NewCPU()
	var hits [8]int32
	c.RegisterRotate(8, func(other uint64) { atomic.AddInt32(&hits[other], 1) })
	for i, h := range hits {
		assert.Equal(t, int32(1), h, "other %d", i)
	}
}
