// Package strategy provides built-in allocation strategy implementations.
//
// Allocation strategies determine how participants are assigned to treatment
// groups. The package includes six built-in strategies:
//
//   - Simple: uniform shuffle followed by round-robin dealing (recommended default)
//   - Block: per-block shuffling that bounds imbalance locally
//   - Stratified: independent round-robin balance within caller-defined strata
//   - Minimization: greedy covariate balancing (CovariateAdaptive is an alias)
//   - PermutedBlock: one full partition of the universe per configured block size
//   - Cluster: indivisible participant groups allocated as single units
//
// # Strategy Selection Guide
//
// Simple:
//   - Use when group sizes only need to balance overall
//   - Guarantees sizes differ by at most 1 across groups
//   - Mutates the participant order it is given (see Simple)
//
// Block:
//   - Use when imbalance must stay bounded over enrollment time
//   - Every block of consecutive participants is balanced on its own
//   - Configuration: block size (must be at least 1)
//
// Stratified:
//   - Use when balance must hold within subgroups (site, sex, age band)
//   - Round-robin balance holds per stratum and therefore overall
//   - Participants outside every stratum are excluded from the result
//
// Minimization:
//   - Use when a covariate must stay balanced across groups
//   - Greedy stable argmin; ties resolve to the earliest declared group
//   - Requires a covariate entry for every participant
//
// PermutedBlock:
//   - Re-partitions the full universe once per configured size
//   - Output size is len(participants) multiplied by len(blockSizes)
//   - See PermutedBlock for why this differs from textbook permuted blocks
//
// Cluster:
//   - Use when whole units (clinics, schools, wards) must stay together
//   - Balances cluster counts per group, not participant counts
//
// Custom strategies can be implemented by satisfying the
// types.AllocationStrategy interface.
package strategy
