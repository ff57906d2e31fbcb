package trialloc

import "github.com/arloliu/trialloc/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the library's
// core types and interfaces. It uses type aliases to re-export definitions
// from the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `trialloc` package, while
// still providing a convenient `trialloc.Allocation`, `trialloc.Logger`, etc.
// for users.
type (
	Allocation       = types.Allocation
	BalanceReport    = types.BalanceReport
	CovariateBalance = types.CovariateBalance
	Covariates       = types.Covariates
	Stratum          = types.Stratum
	Strata           = types.Strata
	Cluster          = types.Cluster
	Clusters         = types.Clusters
)

// Re-export interfaces from the internal types package for convenience.
type (
	AllocationStrategy = types.AllocationStrategy
	ParticipantSource  = types.ParticipantSource
	RandomSource       = types.RandomSource
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
)
