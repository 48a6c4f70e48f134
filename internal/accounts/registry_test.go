package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry(500)

	require.Equal(t, 500, r.Len())
	assert.Equal(t, "ACC-00001", r.At(0))
	assert.Equal(t, "ACC-00500", r.At(499))

	all := r.All()
	require.Len(t, all, 500)
	assert.Equal(t, "ACC-00002", all[1])
}

func TestRegistryExists(t *testing.T) {
	r := NewRegistry(3)
	assert.True(t, r.Exists("ACC-00001"))
	assert.True(t, r.Exists("ACC-00003"))
	assert.False(t, r.Exists("ACC-00004"))
	assert.False(t, r.Exists("acc-00001"))
}

func TestDayLoad(t *testing.T) {
	d := NewDayLoad()
	assert.Equal(t, 0, d.Count("ACC-00001"))
	assert.False(t, d.AtCap("ACC-00001", 2))

	d.Increment("ACC-00001")
	d.Increment("ACC-00001")
	assert.Equal(t, 2, d.Count("ACC-00001"))
	assert.True(t, d.AtCap("ACC-00001", 2))
	assert.False(t, d.AtCap("ACC-00002", 2))
}
