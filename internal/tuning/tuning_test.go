package tuning_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhollow/realmd/internal/tuning"
)

func TestDefaultMovementBound(t *testing.T) {
	m := tuning.Default().Movement

	assert.InDelta(t, 2.25, m.MaxDistancePerTick(), 1e-9)
	assert.InDelta(t, 5.0625, m.MaxDistanceSq(), 1e-9)
}

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, tuning.Default().Validate())
}

func TestLoadAppliesDefaultsForOmittedSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  max_items_per_type: 3\n"), 0o600))

	cfg, err := tuning.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.World.MaxItemsPerType)
	assert.Equal(t, 15.0, cfg.Movement.MaxSpeed)
	assert.Len(t, cfg.World.ItemTypes, 4)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("movement:\n  max_speed: -1\n"), 0o600))

	_, err := tuning.Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := tuning.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
