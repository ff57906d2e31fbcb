// Package types provides core type definitions and interfaces for the Trialloc library.
//
// This package contains shared types that are used across multiple packages in the
// Trialloc library. By keeping these types in a separate package, we avoid import
// cycles between the main trialloc package and its internal implementations.
//
// Key types:
//   - Allocation: Final mapping of groups to their assigned participants
//   - BalanceReport: Group size summary derived from an Allocation
//   - Stratum, Cluster, Covariates: Side inputs consumed by individual strategies
//   - AllocationStrategy: Randomization strategy interface
//   - RandomSource: Seedable shuffle/uniform-choice generator interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
