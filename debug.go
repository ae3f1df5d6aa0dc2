package sway

import (
	"fmt"
	"os"
)

// globalDebug enables extra structural checks on graph operations.
// Off by default; release builds skip the checks entirely.
var globalDebug bool

// SetDebug toggles debug validation. When enabled, AddInput warns on
// stderr about unusually deep blending graphs and unusually large input
// lists, which usually indicate a wiring bug in the host.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugMaxGraphDepth is the nesting depth above which a warning is printed.
const debugMaxGraphDepth = 32

func debugCheckGraphDepth[T any](b *Blender[T]) {
	depth := 0
	for p := b; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxGraphDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[sway] warning: blending graph depth %d exceeds %d (blender %q)\n",
			depth, debugMaxGraphDepth, b.Name)
	}
}

// debugMaxInputCount is the input-list size above which a warning is printed.
const debugMaxInputCount = 1000

func debugCheckInputCount[T any](b *Blender[T]) {
	if len(b.inputs) > debugMaxInputCount {
		_, _ = fmt.Fprintf(os.Stderr, "[sway] warning: blender %q has %d inputs (threshold %d)\n",
			b.Name, len(b.inputs), debugMaxInputCount)
	}
}
