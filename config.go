package trialloc

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/trialloc/source"
	"github.com/arloliu/trialloc/strategy"
	"github.com/arloliu/trialloc/types"
)

// Strategy names accepted in configuration files.
const (
	StrategySimple            = "simple"
	StrategyBlock             = "block"
	StrategyPermutedBlock     = "permuted_block"
	StrategyStratified        = "stratified"
	StrategyCluster           = "cluster"
	StrategyMinimization      = "minimization"
	StrategyCovariateAdaptive = "covariate_adaptive"
)

// StrategyConfig selects a randomization design and carries its parameters.
//
// Only the parameters of the named strategy are consulted; the rest may stay
// empty. Validate reports which parameter is missing or invalid for the
// chosen name.
type StrategyConfig struct {
	// Name is the strategy identifier: "simple", "block", "permuted_block",
	// "stratified", "cluster", "minimization", or "covariate_adaptive".
	// Defaults to "simple" when empty.
	Name string `yaml:"name"`

	// BlockSize is the participants-per-block count for the "block" strategy.
	BlockSize int `yaml:"blockSize"`

	// BlockSizes lists the block sizes for the "permuted_block" strategy,
	// one full partition of the universe per size.
	BlockSizes []int `yaml:"blockSizes"`

	// Strata defines the subgroups for the "stratified" strategy.
	Strata types.Strata `yaml:"strata"`

	// Clusters defines the indivisible units for the "cluster" strategy.
	Clusters types.Clusters `yaml:"clusters"`

	// Covariates maps each participant to its covariate value for the
	// "minimization" and "covariate_adaptive" strategies.
	Covariates types.Covariates `yaml:"covariates"`
}

// Config describes one trial allocation run.
//
// Participants come either inline (participants) or from a file with one
// identifier per line (participantsFile); exactly one of the two must be set.
// Seeding is optional: a numeric seed wins over a seed key, and with neither
// the run is entropy-seeded and not reproducible.
type Config struct {
	// Trial is an optional human-readable trial identifier carried into logs
	// and CLI output.
	Trial string `yaml:"trial"`

	// Participants is the inline participant universe.
	Participants []string `yaml:"participants"`

	// ParticipantsFile is a path to a participant list file, one identifier
	// per line; blank lines and lines starting with '#' are skipped.
	ParticipantsFile string `yaml:"participantsFile"`

	// Groups is the ordered list of at least two unique group names.
	Groups []string `yaml:"groups"`

	// Seed fixes the random seed when non-nil.
	Seed *uint64 `yaml:"seed"`

	// SeedKey derives the seed from a stable string key when Seed is nil.
	SeedKey string `yaml:"seedKey"`

	// Strategy selects the randomization design and its parameters.
	Strategy StrategyConfig `yaml:"strategy"`
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Configuration to fill in (modified in place)
func SetDefaults(cfg *Config) {
	if cfg.Strategy.Name == "" {
		cfg.Strategy.Name = StrategySimple
	}
}

// LoadConfig reads, parses, and validates a YAML configuration file.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Parsed configuration with defaults applied
//   - error: Read, parse, or validation error
//
// Example:
//
//	cfg, err := trialloc.LoadConfig("trial.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	eng, err := cfg.NewEngine(ctx)
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks configuration constraints and returns an error for invalid values.
//
// Hard Validation Rules:
//   - Exactly one of participants / participantsFile is set
//   - At least two groups, all names unique
//   - Strategy name is known and its required parameters are present and valid
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if len(cfg.Participants) == 0 && cfg.ParticipantsFile == "" {
		return fmt.Errorf("participants or participantsFile must be set: %w", ErrNoParticipants)
	}
	if len(cfg.Participants) > 0 && cfg.ParticipantsFile != "" {
		return fmt.Errorf("participants and participantsFile are mutually exclusive")
	}

	if len(cfg.Groups) == 0 {
		return ErrNoGroups
	}
	if len(cfg.Groups) < 2 {
		return ErrTooFewGroups
	}
	if err := requireUnique(cfg.Groups, ErrDuplicateGroup); err != nil {
		return err
	}

	return cfg.Strategy.Validate()
}

// Validate checks that the strategy name is known and its parameters are usable.
//
// Returns:
//   - error: Validation error naming the offending parameter, nil if valid
func (sc *StrategyConfig) Validate() error {
	switch sc.Name {
	case StrategySimple:
		return nil
	case StrategyBlock:
		if sc.BlockSize < 1 {
			return fmt.Errorf("block size %d: %w", sc.BlockSize, ErrInvalidBlockSize)
		}
	case StrategyPermutedBlock:
		if len(sc.BlockSizes) == 0 {
			return ErrNoBlockSizes
		}
		for _, size := range sc.BlockSizes {
			if size < 1 {
				return fmt.Errorf("block size %d: %w", size, ErrInvalidBlockSize)
			}
		}
	case StrategyStratified:
		if len(sc.Strata) == 0 {
			return fmt.Errorf("stratified strategy requires at least one stratum")
		}
	case StrategyCluster:
		if len(sc.Clusters) == 0 {
			return fmt.Errorf("cluster strategy requires at least one cluster")
		}
	case StrategyMinimization, StrategyCovariateAdaptive:
		if len(sc.Covariates) == 0 {
			return fmt.Errorf("%s strategy requires a covariate map", sc.Name)
		}
	default:
		return fmt.Errorf("%q: %w", sc.Name, ErrUnknownStrategy)
	}

	return nil
}

// Build constructs the configured allocation strategy.
//
// Returns:
//   - types.AllocationStrategy: Strategy ready for Engine.Allocate
//   - error: ErrUnknownStrategy for an unrecognized name
func (sc *StrategyConfig) Build() (types.AllocationStrategy, error) {
	switch sc.Name {
	case StrategySimple:
		return strategy.NewSimple(), nil
	case StrategyBlock:
		return strategy.NewBlock(sc.BlockSize), nil
	case StrategyPermutedBlock:
		return strategy.NewPermutedBlock(sc.BlockSizes), nil
	case StrategyStratified:
		return strategy.NewStratified(sc.Strata), nil
	case StrategyCluster:
		return strategy.NewCluster(sc.Clusters), nil
	case StrategyMinimization:
		return strategy.NewMinimization(sc.Covariates), nil
	case StrategyCovariateAdaptive:
		return strategy.NewCovariateAdaptive(sc.Covariates), nil
	default:
		return nil, fmt.Errorf("%q: %w", sc.Name, ErrUnknownStrategy)
	}
}

// ResolveParticipants returns the configured participant universe, reading
// the participant file when one is configured.
//
// Parameters:
//   - ctx: Context for cancellation while reading the file
//
// Returns:
//   - []string: Ordered participant identifiers
//   - error: File read error
func (cfg *Config) ResolveParticipants(ctx context.Context) ([]string, error) {
	if cfg.ParticipantsFile != "" {
		return source.NewFile(cfg.ParticipantsFile).List(ctx)
	}

	return append([]string(nil), cfg.Participants...), nil
}

// NewEngine builds an allocation engine from the configuration.
//
// Configuration-level seeding (seed, then seedKey) is applied first and any
// caller-supplied options after it, so explicit options override the file.
//
// Parameters:
//   - ctx: Context for cancellation while resolving participants
//   - opts: Additional engine options appended after the config-derived ones
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: Participant resolution or engine validation error
func (cfg *Config) NewEngine(ctx context.Context, opts ...Option) (*Engine, error) {
	participants, err := cfg.ResolveParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve participants: %w", err)
	}

	engineOpts := make([]Option, 0, len(opts)+1)
	switch {
	case cfg.Seed != nil:
		engineOpts = append(engineOpts, WithSeed(*cfg.Seed))
	case cfg.SeedKey != "":
		engineOpts = append(engineOpts, WithSeedKey(cfg.SeedKey))
	}
	engineOpts = append(engineOpts, opts...)

	return NewEngine(participants, cfg.Groups, engineOpts...)
}
