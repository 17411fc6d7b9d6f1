package fault

import (
	"strings"

	"github.com/google/uuid"
)

// MaxRenderDepth bounds the causal descent of Render. Chains built through
// the public constructors stay well under it; the limit exists so that
// rendering terminates even for pathologically deep or hand-forged chains.
const MaxRenderDepth = 32

const (
	truncatedMarker = "... (chain truncated)"
	circularMarker  = "... (circular reference detected)"
)

// Render walks the chain head-first and produces a human-readable tree:
//
//	validation: bad request
//	  field=email
//	  Caused by:
//	    unknown: parse failure
//
// Each node renders as "{kind}: {message}" indented by depth, followed by
// its metadata entries and its source. Descent stops with a marker when
// MaxRenderDepth is reached or a node identity repeats.
func (f *Fault) Render() string {
	var b strings.Builder
	seen := make(map[uuid.UUID]struct{})
	renderAt(&b, f, 0, seen)
	return b.String()
}

func renderAt(b *strings.Builder, f *Fault, depth int, seen map[uuid.UUID]struct{}) {
	indent := strings.Repeat("  ", depth)

	if depth >= MaxRenderDepth {
		b.WriteString(indent + truncatedMarker + "\n")
		return
	}
	if _, ok := seen[f.id]; ok {
		b.WriteString(indent + circularMarker + "\n")
		return
	}
	seen[f.id] = struct{}{}

	b.WriteString(indent + f.kind.String() + ": " + f.message + "\n")
	for _, e := range f.meta {
		b.WriteString(indent + "  " + e.Key + "=" + e.Value.String() + "\n")
	}
	if f.source != nil {
		b.WriteString(indent + "  Caused by:\n")
		renderAt(b, f.source, depth+1, seen)
	}
}
