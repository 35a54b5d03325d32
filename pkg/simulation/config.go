package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flock"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema string

const schemaURL = "config.schema.json"

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// World box, full widths centered on the origin
	WorldSizeX float64 `json:"worldSizeX" toml:"worldSizeX"`
	WorldSizeY float64 `json:"worldSizeY" toml:"worldSizeY"`
	WorldSizeZ float64 `json:"worldSizeZ" toml:"worldSizeZ"`
	BoundaryX  string  `json:"boundaryX" toml:"boundaryX"`
	BoundaryY  string  `json:"boundaryY" toml:"boundaryY"`
	BoundaryZ  string  `json:"boundaryZ" toml:"boundaryZ"`

	// Population
	NumBoids int     `json:"numBoids" toml:"numBoids"`
	BoidSize float64 `json:"boidSize" toml:"boidSize"`

	// Live knobs, initial positions
	ViewRadius    float64 `json:"viewRadius" toml:"viewRadius"`
	PushScale     float64 `json:"pushScale" toml:"pushScale"`
	PullScale     float64 `json:"pullScale" toml:"pullScale"`
	CenterEnabled bool    `json:"centerEnabled" toml:"centerEnabled"`

	// Fixed for the run
	MatchScale     float64 `json:"matchScale" toml:"matchScale"`
	CenterScale    float64 `json:"centerScale" toml:"centerScale"`
	MinSpeed       float64 `json:"minSpeed" toml:"minSpeed"`
	MaxSpeed       float64 `json:"maxSpeed" toml:"maxSpeed"`
	MaxForceBudget float64 `json:"maxForceBudget" toml:"maxForceBudget"`
	Cohesion       string  `json:"cohesion" toml:"cohesion"`
	NeighborIndex  string  `json:"neighborIndex" toml:"neighborIndex"`
	Workers        int     `json:"workers" toml:"workers"` // 0 = one per CPU
	Seed           uint64  `json:"seed" toml:"seed"`       // 0 = pick one from the clock
	ColorCap       int     `json:"colorNeighborCap" toml:"colorNeighborCap"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldSizeX:     2400,
		WorldSizeY:     1350,
		WorldSizeZ:     2400,
		BoundaryX:      "wrap",
		BoundaryY:      "reflect",
		BoundaryZ:      "wrap",
		NumBoids:       400,
		BoidSize:       1.2,
		ViewRadius:     100,
		PushScale:      1.0,
		PullScale:      0.8,
		CenterEnabled:  true,
		MatchScale:     0.1,
		CenterScale:    1.0,
		MinSpeed:       0,
		MaxSpeed:       3.0,
		MaxForceBudget: 1.0,
		Cohesion:       "average",
		NeighborIndex:  "matrix",
		ColorCap:       flock.DefaultNeighborCap,
	}
}

// LoadConfig reads a JSON or TOML file (by extension), validates it against the embedded
// schema and overlays it on DefaultConfig, so omitted keys keep their default.
func LoadConfig(configFile string) (*Config, error) {
	sch, err := jsonschema.CompileString(schemaURL, configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return load(configFile, sch)
}

// LoadConfigWithSchema is LoadConfig with the schema read from schemaFile.
func LoadConfigWithSchema(configFile, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return load(configFile, sch)
}

func load(configFile string, sch *jsonschema.Schema) (*Config, error) {
	b, err := readAsJSON(configFile)
	if err != nil {
		return nil, err
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readAsJSON returns the file content as JSON. TOML files are decoded to a generic
// document first so the same schema applies to both formats.
func readAsJSON(configFile string) ([]byte, error) {
	if !strings.EqualFold(filepath.Ext(configFile), ".toml") {
		b, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		return b, nil
	}
	doc := make(map[string]interface{})
	if _, err := toml.DecodeFile(configFile, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config toml: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert toml config: %w", err)
	}
	return b, nil
}

// Validate checks ranges and enum values independently of any schema.
func (c *Config) Validate() error {
	if _, err := c.World(); err != nil {
		return err
	}
	if c.NumBoids < 0 {
		return fmt.Errorf("%w: numBoids %d is negative", ErrInvalidConfig, c.NumBoids)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	}
	p, err := c.Params()
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Knobs().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// World builds the world box.
func (c *Config) World() (flock.World, error) {
	w := flock.World{}
	sizes := [3]float64{c.WorldSizeX, c.WorldSizeY, c.WorldSizeZ}
	names := [3]string{c.BoundaryX, c.BoundaryY, c.BoundaryZ}
	for axis := range sizes {
		if sizes[axis] <= 0 {
			return w, fmt.Errorf("%w: world size on axis %d must be positive", ErrInvalidConfig, axis)
		}
		policy, err := flock.ParseBoundaryPolicy(names[axis])
		if err != nil {
			return w, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		w.Policies[axis] = policy
	}
	w.Extents.X, w.Extents.Y, w.Extents.Z = sizes[0], sizes[1], sizes[2]
	return w, nil
}

// Params returns the settings fixed for the run.
func (c *Config) Params() (flock.Params, error) {
	rule, err := flock.ParseCohesionRule(c.Cohesion)
	if err != nil {
		return flock.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	index, err := flock.ParseIndexKind(c.NeighborIndex)
	if err != nil {
		return flock.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return flock.Params{
		MatchScale:     c.MatchScale,
		CenterScale:    c.CenterScale,
		MinSpeed:       c.MinSpeed,
		MaxSpeed:       c.MaxSpeed,
		MaxForceBudget: c.MaxForceBudget,
		Cohesion:       rule,
		Index:          index,
		Workers:        c.Workers,
		NeighborCap:    c.ColorCap,
	}, nil
}

// Knobs returns the initial knob positions.
func (c *Config) Knobs() flock.Knobs {
	return flock.Knobs{
		ViewRadius:    c.ViewRadius,
		PushScale:     c.PushScale,
		PullScale:     c.PullScale,
		CenterEnabled: c.CenterEnabled,
		AgentScale:    c.BoidSize,
	}
}
