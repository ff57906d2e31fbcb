// Package testing provides test utilities for the Trialloc library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: types.Logger that writes through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    trialtest "github.com/arloliu/trialloc/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    logger := trialtest.NewTestLogger(t)
//	    eng, err := trialloc.NewEngine(participants, groups, trialloc.WithLogger(logger))
//	    // ...
//	}
package testing
