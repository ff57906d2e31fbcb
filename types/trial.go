package types

import "slices"

// Stratum is a named, caller-defined subgroup of the participant universe that
// stratified randomization balances independently before combining.
//
// Strata are declared as an ordered slice rather than a map: the declaration
// order is the processing order, and processing order determines which random
// draws each stratum consumes. Keeping it explicit makes seeded runs
// reproducible (Go map iteration order is randomized).
type Stratum struct {
	// Name identifies the stratum (e.g., "age<65", "site-berlin").
	Name string `yaml:"name" json:"name"`

	// Members lists the participant identifiers in this stratum. Every member
	// must exist in the engine's participant universe. The member-lists of all
	// strata together should cover the universe; participants missing from
	// every stratum are silently excluded from the result.
	Members []string `yaml:"members" json:"members"`
}

// Strata is the ordered list of strata consumed by stratified randomization.
type Strata []Stratum

// Clone returns a deep copy of the strata, including member slices.
func (s Strata) Clone() Strata {
	if s == nil {
		return nil
	}

	out := make(Strata, len(s))
	for i, stratum := range s {
		out[i] = Stratum{Name: stratum.Name, Members: slices.Clone(stratum.Members)}
	}

	return out
}

// Cluster is a named, indivisible unit of participants that cluster
// randomization allocates to a single group as a whole.
//
// Like Strata, clusters are an ordered slice so seeded runs stay reproducible.
type Cluster struct {
	// Name identifies the cluster (e.g., a clinic or school).
	Name string `yaml:"name" json:"name"`

	// Members lists the participant identifiers allocated together. Every
	// member must exist in the engine's participant universe. Member order is
	// preserved in the expanded allocation.
	Members []string `yaml:"members" json:"members"`
}

// Clusters is the ordered list of clusters consumed by cluster randomization.
type Clusters []Cluster

// Clone returns a deep copy of the clusters, including member slices.
func (c Clusters) Clone() Clusters {
	if c == nil {
		return nil
	}

	out := make(Clusters, len(c))
	for i, cluster := range c {
		out[i] = Cluster{Name: cluster.Name, Members: slices.Clone(cluster.Members)}
	}

	return out
}

// Covariates maps each participant identifier to a single covariate value.
//
// Balancing strategies compare values with plain string equality. A
// multi-dimensional covariate vector is not balanced per dimension; callers
// must pre-combine dimensions into one composite value (e.g., "male|smoker")
// before handing the map to the engine.
type Covariates map[string]string
