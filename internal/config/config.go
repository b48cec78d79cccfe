// Package config handles configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	LOD      LODConfig      `yaml:"lod"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"`  // vertical field of view, radians
	Near       float32 `yaml:"near"` // near clip plane
	Far        float32 `yaml:"far"`  // far clip plane
}

// TerrainConfig holds the procedural terrain parameters.
type TerrainConfig struct {
	Size       float32 `yaml:"size"`       // world units per side
	MinHeight  float32 `yaml:"min_height"` // world Y of heightmap 0
	MaxHeight  float32 `yaml:"max_height"` // world Y of heightmap 1
	Resolution int     `yaml:"resolution"` // heightmap texels per side
	Seed       int64   `yaml:"seed"`
	Frequency  float32 `yaml:"frequency"` // base noise frequency
	Octaves    int     `yaml:"octaves"`

	WaterEnabled bool    `yaml:"water_enabled"`
	WaterLevel   float32 `yaml:"water_level"` // world Y of the water plane

	SunAzimuth   float32 `yaml:"sun_azimuth"`   // degrees around Y
	SunElevation float32 `yaml:"sun_elevation"` // degrees above horizon
}

// LODConfig holds detail selection settings. Policy picks between a single
// terrain-wide level ("flat") and per-tile quadtree refinement ("quadtree").
type LODConfig struct {
	Policy string `yaml:"policy"`

	// Distances are the flat policy's band edges, ascending.
	Distances []float32 `yaml:"distances"`

	// SubdivideDistances drive quadtree refinement, one entry per depth.
	SubdivideDistances []float32 `yaml:"subdivide_distances"`

	MinTileSize float32 `yaml:"min_tile_size"`
	MaxLevels   int     `yaml:"max_levels"`

	// GridResolution is the finest tile mesh resolution in quads per side.
	GridResolution int `yaml:"grid_resolution"`

	CullingEnabled bool `yaml:"culling_enabled"`

	// AlwaysDraw skips the frustum test for the flat policy.
	AlwaysDraw bool `yaml:"always_draw"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	AmbientPath   string  `yaml:"ambient_path"`
	MasterVolume  float64 `yaml:"master_volume"`
	AmbientVolume float64 `yaml:"ambient_volume"`
	Muted         bool    `yaml:"muted"`
}

// DebugConfig holds debug overlay settings.
type DebugConfig struct {
	ShowStats      bool   `yaml:"show_stats"`
	TintLevels     bool   `yaml:"tint_levels"`
	ShowTileBounds bool   `yaml:"show_tile_bounds"`
	ScreenshotDir  string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        0.785398, // pi/4
			Near:       1.0,
			Far:        3000.0,
		},
		Terrain: TerrainConfig{
			Size:         512,
			MinHeight:    0,
			MaxHeight:    150,
			Resolution:   256,
			Seed:         1,
			Frequency:    4.0,
			Octaves:      6,
			WaterEnabled: true,
			WaterLevel:   30,
			SunAzimuth:   135,
			SunElevation: 50,
		},
		LOD: LODConfig{
			Policy:             "quadtree",
			Distances:          []float32{150, 300, 500, 800},
			SubdivideDistances: []float32{1200, 800, 500, 300, 150},
			MinTileSize:        32,
			MaxLevels:          5,
			GridResolution:     32,
			CullingEnabled:     true,
			AlwaysDraw:         false,
		},
		Audio: AudioConfig{
			Enabled:       false,
			AmbientPath:   "",
			MasterVolume:  0.8,
			AmbientVolume: 0.7,
			Muted:         false,
		},
		Debug: DebugConfig{
			ShowStats:      true,
			TintLevels:     false,
			ShowTileBounds: false,
			ScreenshotDir:  "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
