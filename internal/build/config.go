package build

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openesa/esacore/internal/esaerr"
	"github.com/openesa/esacore/internal/tokenize"
	"github.com/openesa/esacore/internal/vector"
)

//go:embed default_build.yaml
var defaultConfigYAML []byte

// Config holds every build-time parameter spec.md §4.5 and §9 open question
// 2 leave unpinned. The embedded default_build.yaml sets min_freq to 15; a
// YAML file that omits min_freq leaves MinFreq at 0, and Validate accepts
// that (it rejects only negative values), so a missing key is not reported.
type Config struct {
	// MinFreq is the scan_by_term cut-off (spec.md §4.3 op 4, §9 open
	// question 2): rows whose stored weight is <= MinFreq are skipped. An
	// absent min_freq key reads as 0.
	MinFreq float32 `yaml:"min_freq"`

	// WindowSize and WindowThresh parameterize sliding-window truncation
	// (spec.md §4.5(c)).
	WindowSize   int     `yaml:"window_size"`
	WindowThresh float32 `yaml:"window_thresh"`

	// CheckpointEvery is how many documents ingest processes between
	// LabelMap checkpoint writes (spec.md §4.5 Step 2).
	CheckpointEvery int `yaml:"checkpoint_every"`

	// Normalization selects L1 (reference-compatible, default) or L2
	// (spec.md §9 open question 1).
	Normalization string `yaml:"normalization"`

	// FilterChain names the ordered token transformers to build
	// (spec.md §4.1). Build and query must use identical chains.
	FilterChain []string `yaml:"filter_chain"`

	// StopwordsFile is a path to a newline-delimited stop-word list,
	// consulted only if "stopwords" appears in FilterChain. Empty means no
	// stop-words are removed even if the filter is present.
	StopwordsFile string `yaml:"stopwords_file"`

	// VectorEmissionConcurrency bounds the number of terms processed
	// concurrently during Step 5 (spec.md §5's optional parallelism for
	// "independent per-term vector emission").
	VectorEmissionConcurrency int `yaml:"vector_emission_concurrency"`
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() (*Config, error) {
	return LoadConfigBytes(defaultConfigYAML)
}

// LoadConfig reads and validates a Config from a YAML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w: %w", path, esaerr.ErrConfig, err)
	}
	return LoadConfigBytes(data)
}

// LoadConfigBytes parses and validates a Config from raw YAML.
func LoadConfigBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w: %w", esaerr.ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration is complete and internally consistent.
func (c *Config) Validate() error {
	if c.MinFreq < 0 {
		return fmt.Errorf("min_freq must be >= 0, got %v: %w", c.MinFreq, esaerr.ErrConfig)
	}
	if c.WindowSize <= 0 {
		return fmt.Errorf("window_size must be > 0, got %d: %w", c.WindowSize, esaerr.ErrConfig)
	}
	if c.WindowThresh < 0 {
		return fmt.Errorf("window_thresh must be >= 0, got %v: %w", c.WindowThresh, esaerr.ErrConfig)
	}
	if c.CheckpointEvery <= 0 {
		return fmt.Errorf("checkpoint_every must be > 0, got %d: %w", c.CheckpointEvery, esaerr.ErrConfig)
	}
	if c.VectorEmissionConcurrency <= 0 {
		return fmt.Errorf("vector_emission_concurrency must be > 0, got %d: %w", c.VectorEmissionConcurrency, esaerr.ErrConfig)
	}
	switch strings.ToLower(c.Normalization) {
	case "l1", "l2":
	default:
		return fmt.Errorf("normalization must be l1 or l2, got %q: %w", c.Normalization, esaerr.ErrConfig)
	}
	if len(c.FilterChain) == 0 {
		return fmt.Errorf("filter_chain must not be empty: %w", esaerr.ErrConfig)
	}
	return nil
}

// NormalizationMode translates the config's string setting into a
// vector.NormalizationMode.
func (c *Config) NormalizationMode() vector.NormalizationMode {
	if strings.ToLower(c.Normalization) == "l2" {
		return vector.L2
	}
	return vector.L1
}

// BuildFilterChain constructs the tokenize.FilterChain this config
// describes, loading stop-words from StopwordsFile if configured.
func (c *Config) BuildFilterChain() (tokenize.FilterChain, error) {
	var stopwords []string
	if c.StopwordsFile != "" {
		data, err := os.ReadFile(c.StopwordsFile)
		if err != nil {
			return tokenize.FilterChain{}, fmt.Errorf("reading stopwords file %s: %w: %w", c.StopwordsFile, esaerr.ErrConfig, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				stopwords = append(stopwords, line)
			}
		}
	}
	return tokenize.BuildFilterChain(c.FilterChain, stopwords)
}
