package assets

import "github.com/srinithi0406/ISL/core/grammar"

// RenderPlan is the ordered asset sequence for one complete input, all
// sentences concatenated in processing order. It is immutable once built.
type RenderPlan struct {
	refs []AssetReference
}

// NewRenderPlan copies refs into an immutable plan.
func NewRenderPlan(refs ...AssetReference) RenderPlan {
	return RenderPlan{refs: append([]AssetReference(nil), refs...)}
}

// PlanSigns resolves an ordered token sequence against the catalog. Every
// token yields exactly one reference; resolution never fails.
func PlanSigns(catalog *Catalog, tokens []grammar.SignToken) RenderPlan {
	refs := make([]AssetReference, 0, len(tokens))
	for _, token := range tokens {
		refs = append(refs, catalog.Resolve(token))
	}
	return RenderPlan{refs: refs}
}

// Append returns a new plan extending the receiver; the receiver is left
// untouched.
func (p RenderPlan) Append(other RenderPlan) RenderPlan {
	refs := make([]AssetReference, 0, len(p.refs)+len(other.refs))
	refs = append(refs, p.refs...)
	refs = append(refs, other.refs...)
	return RenderPlan{refs: refs}
}

// Refs returns a copy of the plan's references in order.
func (p RenderPlan) Refs() []AssetReference {
	return append([]AssetReference(nil), p.refs...)
}

// Len reports the number of references in the plan.
func (p RenderPlan) Len() int { return len(p.refs) }

// ClipPaths expands the plan into the flat ordered clip list, with
// finger-spelling sequences flattened into their letter clips.
func (p RenderPlan) ClipPaths() []string {
	var paths []string
	for _, ref := range p.refs {
		paths = append(paths, ref.ClipPaths()...)
	}
	return paths
}
