// Package config handles converter configuration loading and management.
package config

// Config holds all converter settings.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig holds the maze source settings.
type InputConfig struct {
	// MapPath is the ASCII maze file used when no positional argument is
	// given on the command line.
	MapPath string `yaml:"map_path"`
}

// OutputConfig holds destination paths and the tilemap toggle.
type OutputConfig struct {
	MeshPath     string `yaml:"mesh_path"`
	TilemapPath  string `yaml:"tilemap_path"`
	WriteTilemap bool   `yaml:"write_tilemap"`
}

// MeshConfig holds geometry synthesis settings.
type MeshConfig struct {
	// Scale is the world-space edge length of one tile.
	Scale            float32 `yaml:"scale"`
	Optimize         bool    `yaml:"optimize"`
	EmitFloor        bool    `yaml:"emit_floor"`
	EmitCeiling      bool    `yaml:"emit_ceiling"`
	ZeroUnknownTiles bool    `yaml:"zero_unknown_tiles"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			MapPath: "data/bt1skarabrae.txt",
		},
		Output: OutputConfig{
			MeshPath:     "maze.obj",
			TilemapPath:  "maze.tilemap.bin",
			WriteTilemap: true,
		},
		Mesh: MeshConfig{
			Scale:            1.0,
			Optimize:         true,
			EmitFloor:        true,
			EmitCeiling:      false,
			ZeroUnknownTiles: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
