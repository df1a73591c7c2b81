package testutil

import "testing"

// Given names a subtest after the state it sets up, e.g. a seeded key or a
// failing readiness check.
func Given(t *testing.T, state string, fn func(t *testing.T)) bool {
	t.Helper()
	return t.Run("given "+state, fn)
}

// When names a subtest after the request it issues.
func When(t *testing.T, action string, fn func(t *testing.T)) bool {
	t.Helper()
	return t.Run("when "+action, fn)
}

// Then names a subtest after the response it asserts.
func Then(t *testing.T, outcome string, fn func(t *testing.T)) bool {
	t.Helper()
	return t.Run("then "+outcome, fn)
}
