package svc

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config replaces the global singletons design note §9 calls out
// (g_userMaxLodPower and friends) with one explicit struct threaded
// through constructors.
type Config struct {
	// LOD cache.
	LODCacheCapacity int `yaml:"lod_cache_capacity"`

	// View manager.
	UserMaxLODPower float64 `yaml:"user_max_lod_power"`
	ViewportWidth   int     `yaml:"viewport_width"`
	ViewportHeight  int     `yaml:"viewport_height"`
	FieldOfView     float64 `yaml:"field_of_view_degrees"`
	FrontPlane      float64 `yaml:"front_plane"`
	BackPlane       float64 `yaml:"back_plane"`

	// Asset search directories, handed to load.Loader.SetDir.
	ModelDir  string `yaml:"model_dir"`
	TextureDir string `yaml:"texture_dir"`
	SourceDir string `yaml:"source_dir"`

	// Disk provider.
	DiskWorkerQueueCapacity int `yaml:"disk_worker_queue_capacity"`
}

// DefaultConfig returns reasonable defaults matching the teacher's own
// camera/viewport defaults, so a caller can start from this and override
// only what differs.
func DefaultConfig() *Config {
	return &Config{
		LODCacheCapacity:        64,
		UserMaxLODPower:         1.0,
		ViewportWidth:           640,
		ViewportHeight:          480,
		FieldOfView:             60,
		FrontPlane:              1,
		BackPlane:               100,
		DiskWorkerQueueCapacity: 32,
	}
}

// LoadConfig reads a yaml document at path over top of DefaultConfig.
func LoadConfig(path string) (*Config, *Error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Wrap(err, ResourceAllocation, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, Wrap(err, InvalidParameters, "parse config")
	}
	return cfg, nil
}
