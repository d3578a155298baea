package hankel

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if any parallel worker outlives its call.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
