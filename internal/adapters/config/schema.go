package config

// Scenefile represents the structure of the .scenecache.yaml configuration file.
// Pointer fields distinguish an explicit zero from an omitted key.
type Scenefile struct {
	Version        string `yaml:"version"`
	CheckFrequency *int   `yaml:"check_frequency"`
	Staleness      string `yaml:"staleness"`
	Jobs           *int   `yaml:"jobs"`
	LogFormat      string `yaml:"log_format"`
	LogLevel       string `yaml:"log_level"`
	Debounce       string `yaml:"debounce"`
}
