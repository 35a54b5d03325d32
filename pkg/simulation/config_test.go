package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ShippedFiles(t *testing.T) {
	cfg, err := LoadConfig("../../configs/default.json")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfigWithSchema("../../configs/default.json", "../../configs/config.schema.json")
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.NumBoids)

	cfg, err = LoadConfig("../../configs/grid.toml")
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.NumBoids)
	assert.Equal(t, "grid", cfg.NeighborIndex)
	assert.Equal(t, uint64(20240611), cfg.Seed)
	assert.Equal(t, 3.0, cfg.MaxSpeed, "omitted keys keep their default")

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, flock.GridIndex, p.Index)
	assert.Equal(t, flock.CohesionSum, p.Cohesion)

	w, err := cfg.World()
	require.NoError(t, err)
	assert.Equal(t, [3]flock.BoundaryPolicy{flock.Reflect, flock.Reflect, flock.Reflect}, w.Policies)
	assert.Equal(t, 2000.0, w.Extents.Y)
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"out of range radius", "c.json", `{"viewRadius": 900}`},
		{"unknown boundary", "c.json", `{"boundaryX": "bounce"}`},
		{"unknown key", "c.json", `{"numRed": 3}`},
		{"wrong type", "c.json", `{"numBoids": "many"}`},
		{"broken json", "c.json", `{"numBoids": `},
		{"bad toml value", "c.toml", "pushScale = 3.0\n"},
		{"min above max", "c.json", `{"minSpeed": 5, "maxSpeed": 3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.MinSpeed = 10
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, cfg.Validate(), flock.ErrInvalidParams)

	cfg = DefaultConfig()
	cfg.Cohesion = "median"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.WorldSizeZ = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.BoidSize = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestConfig_Projections(t *testing.T) {
	cfg := DefaultConfig()

	k := cfg.Knobs()
	assert.Equal(t, flock.DefaultKnobs(), k)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, flock.DefaultParams(), p)
	assert.Equal(t, 1.5, p.NominalSpeed())

	w, err := cfg.World()
	require.NoError(t, err)
	assert.Equal(t, [3]flock.BoundaryPolicy{flock.Wrap, flock.Reflect, flock.Wrap}, w.Policies)
}
