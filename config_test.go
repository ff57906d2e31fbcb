package trialloc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/trialloc/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trial.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfigFile(t, `
trial: hypertension-2026
participants: [P1, P2, P3, P4, P5, P6, P7, P8]
groups: [Treatment, Control]
seed: 42
strategy:
  name: block
  blockSize: 4
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "hypertension-2026", cfg.Trial)
		require.Len(t, cfg.Participants, 8)
		require.Equal(t, []string{"Treatment", "Control"}, cfg.Groups)
		require.NotNil(t, cfg.Seed)
		require.Equal(t, uint64(42), *cfg.Seed)
		require.Equal(t, StrategyBlock, cfg.Strategy.Name)
		require.Equal(t, 4, cfg.Strategy.BlockSize)
	})

	t.Run("strategy defaults to simple", func(t *testing.T) {
		path := writeConfigFile(t, `
participants: [P1, P2]
groups: [A, B]
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, StrategySimple, cfg.Strategy.Name)
		require.Nil(t, cfg.Seed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		require.ErrorContains(t, err, "read config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "groups: [A, B\n")

		_, err := LoadConfig(path)
		require.Error(t, err)
		require.ErrorContains(t, err, "parse config")
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		path := writeConfigFile(t, `
participants: [P1, P2]
groups: [OnlyOne]
`)

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrTooFewGroups)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Participants: []string{"P1", "P2", "P3", "P4"},
			Groups:       []string{"A", "B"},
			Strategy:     StrategyConfig{Name: StrategySimple},
		}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
	})

	t.Run("no participant input", func(t *testing.T) {
		cfg := valid()
		cfg.Participants = nil
		require.ErrorIs(t, cfg.Validate(), ErrNoParticipants)
	})

	t.Run("both participant inputs", func(t *testing.T) {
		cfg := valid()
		cfg.ParticipantsFile = "participants.txt"
		require.ErrorContains(t, cfg.Validate(), "mutually exclusive")
	})

	t.Run("no groups", func(t *testing.T) {
		cfg := valid()
		cfg.Groups = nil
		require.ErrorIs(t, cfg.Validate(), ErrNoGroups)
	})

	t.Run("duplicate groups", func(t *testing.T) {
		cfg := valid()
		cfg.Groups = []string{"A", "A"}
		require.ErrorIs(t, cfg.Validate(), ErrDuplicateGroup)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cfg := valid()
		cfg.Strategy.Name = "alternating"
		require.ErrorIs(t, cfg.Validate(), ErrUnknownStrategy)
	})

	t.Run("block without size", func(t *testing.T) {
		cfg := valid()
		cfg.Strategy = StrategyConfig{Name: StrategyBlock}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidBlockSize)
	})

	t.Run("permuted block without sizes", func(t *testing.T) {
		cfg := valid()
		cfg.Strategy = StrategyConfig{Name: StrategyPermutedBlock}
		require.ErrorIs(t, cfg.Validate(), ErrNoBlockSizes)
	})

	t.Run("permuted block with bad size", func(t *testing.T) {
		cfg := valid()
		cfg.Strategy = StrategyConfig{Name: StrategyPermutedBlock, BlockSizes: []int{2, 0}}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidBlockSize)
	})

	t.Run("stratified without strata", func(t *testing.T) {
		cfg := valid()
		cfg.Strategy = StrategyConfig{Name: StrategyStratified}
		require.ErrorContains(t, cfg.Validate(), "stratum")
	})

	t.Run("cluster without clusters", func(t *testing.T) {
		cfg := valid()
		cfg.Strategy = StrategyConfig{Name: StrategyCluster}
		require.ErrorContains(t, cfg.Validate(), "cluster")
	})

	t.Run("minimization without covariates", func(t *testing.T) {
		cfg := valid()
		cfg.Strategy = StrategyConfig{Name: StrategyMinimization}
		require.ErrorContains(t, cfg.Validate(), "covariate map")
	})
}

func TestStrategyConfig_Build(t *testing.T) {
	cases := []struct {
		cfg  StrategyConfig
		want string
	}{
		{StrategyConfig{Name: StrategySimple}, "simple"},
		{StrategyConfig{Name: StrategyBlock, BlockSize: 4}, "block"},
		{StrategyConfig{Name: StrategyPermutedBlock, BlockSizes: []int{2, 4}}, "permuted_block"},
		{StrategyConfig{Name: StrategyStratified, Strata: types.Strata{{Name: "s"}}}, "stratified"},
		{StrategyConfig{Name: StrategyCluster, Clusters: types.Clusters{{Name: "c"}}}, "cluster"},
		{StrategyConfig{Name: StrategyMinimization, Covariates: types.Covariates{"P1": "x"}}, "minimization"},
		{StrategyConfig{Name: StrategyCovariateAdaptive, Covariates: types.Covariates{"P1": "x"}}, "covariate_adaptive"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			s, err := tc.cfg.Build()
			require.NoError(t, err)
			require.Equal(t, tc.want, s.Name())
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		sc := StrategyConfig{Name: "alternating"}
		_, err := sc.Build()
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})
}

func TestConfig_NewEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("inline participants with config seed", func(t *testing.T) {
		seed := uint64(42)
		cfg := Config{
			Participants: []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"},
			Groups:       []string{"Treatment", "Control"},
			Seed:         &seed,
			Strategy:     StrategyConfig{Name: StrategySimple},
		}

		eng, err := cfg.NewEngine(ctx)
		require.NoError(t, err)

		reference, err := NewEngine(cfg.Participants, cfg.Groups, WithSeed(42))
		require.NoError(t, err)

		got, err := eng.SimpleRandomization()
		require.NoError(t, err)
		want, err := reference.SimpleRandomization()
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("participants from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "participants.txt")
		require.NoError(t, os.WriteFile(path, []byte("# cohort A\nP1\nP2\n\nP3\nP4\n"), 0o600))

		cfg := Config{
			ParticipantsFile: path,
			Groups:           []string{"A", "B"},
			Strategy:         StrategyConfig{Name: StrategySimple},
		}

		eng, err := cfg.NewEngine(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"P1", "P2", "P3", "P4"}, eng.Participants())
	})

	t.Run("caller options override config seed", func(t *testing.T) {
		seed := uint64(42)
		cfg := Config{
			Participants: []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"},
			Groups:       []string{"A", "B"},
			Seed:         &seed,
			Strategy:     StrategyConfig{Name: StrategySimple},
		}

		eng, err := cfg.NewEngine(ctx, WithSeed(7))
		require.NoError(t, err)

		reference, err := NewEngine(cfg.Participants, cfg.Groups, WithSeed(7))
		require.NoError(t, err)

		got, err := eng.SimpleRandomization()
		require.NoError(t, err)
		want, err := reference.SimpleRandomization()
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("seed key applies when seed absent", func(t *testing.T) {
		cfg := Config{
			Participants: []string{"P1", "P2", "P3", "P4"},
			Groups:       []string{"A", "B"},
			SeedKey:      "PROTO-2026-017",
			Strategy:     StrategyConfig{Name: StrategySimple},
		}

		eng, err := cfg.NewEngine(ctx)
		require.NoError(t, err)

		reference, err := NewEngine(cfg.Participants, cfg.Groups, WithSeedKey("PROTO-2026-017"))
		require.NoError(t, err)

		got, err := eng.SimpleRandomization()
		require.NoError(t, err)
		want, err := reference.SimpleRandomization()
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("missing participant file", func(t *testing.T) {
		cfg := Config{
			ParticipantsFile: filepath.Join(t.TempDir(), "absent.txt"),
			Groups:           []string{"A", "B"},
			Strategy:         StrategyConfig{Name: StrategySimple},
		}

		_, err := cfg.NewEngine(ctx)
		require.ErrorContains(t, err, "resolve participants")
	})
}
