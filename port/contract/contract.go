package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make creates a fresh testing subject for a contract.
//
// When a contract needs more than a single value, for example a range and the values it is expected to yield,
// return a "XXXSubject" struct that holds them as fields.
// Make is called once per test case, so subjects never leak state between cases.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract is a reusable set of behavioural tests.
//
// A contract states what a consumer expects from a role interface,
// and every implementation of that role proves it by running the contract against itself.
// Cursor tiers are such roles: whatever wraps a cursor must keep the promises of the tier it claims.
type Contract interface {
	testcase.Suite
	// Test runs the contract's expectations against the subject.
	Test(*testing.T)
	// Benchmark measures the operations the consumer of the role relies on.
	Benchmark(*testing.B)
}
