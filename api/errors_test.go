package api_test

import (
	"errors"
	"testing"

	"github.com/momentics/anycoll/api"
)

func TestViolatePanicsWithKind(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Violate did not panic")
		}
		err, ok := r.(*api.Violation)
		if !ok {
			t.Fatalf("panic payload %T, want *api.Violation", r)
		}
		if !errors.Is(err, api.ErrNegativeCount) {
			t.Errorf("violation kind = %v", err)
		}
		if err.Error() == api.ErrNegativeCount.Error() {
			t.Error("detail missing from diagnostic")
		}
	}()
	api.Violate(api.ErrNegativeCount, "count %d", -1)
}
