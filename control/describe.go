// control/describe.go
// Author: momentics <momentics@gmail.com>
//
// Spew-backed description of erased wrappers. Depth-bounded so dumping a
// wrapper never walks an entire wrapped container graph.

package control

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/momentics/anycoll/api"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                4,
	SortKeys:                true,
	DisablePointerAddresses: true,
}

// Describable is what a wrapper must expose to be probed: every facade
// type satisfies it.
type Describable interface {
	Capability() string
}

// Describe renders any value as a bounded spew dump.
func Describe(v any) string { return dumper.Sdump(v) }

// RegisterWrapperProbe publishes a wrapper's capability level, count bound
// and erased-state dump under the given name.
func RegisterWrapperProbe(dp *DebugProbes, name string, w Describable) {
	dp.RegisterProbe(name, func() any {
		return map[string]any{
			"capability":    w.Capability(),
			"underestimate": api.UnderestimateOf(w),
			"state":         Describe(w),
		}
	})
}
