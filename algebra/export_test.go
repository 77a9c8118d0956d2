package algebra

import "github.com/katalvlaran/opalg/ident"

// StoreRaw_TestOnly inserts a term under an arbitrary key, bypassing Add's
// invariant maintenance. White-box bridge for exercising Validate's failure
// paths from the external test package.
func (e *Elements) StoreRaw_TestOnly(key ident.Key, t Term) {
	e.ensure()
	e.terms[key] = t
}
