// Package refsample bundles compact excerpts of the WHO 2006, WHO 2007
// and CDC 2000 LMS reference tables, wired through the same
// growthref.Dataset interface a full dataset uses. The excerpts cover
// the ages the examples and acceptance tests exercise; production
// deployments swap in the complete published tables without touching
// any other code.
//
// Everything here is constant data: each dataset is built once at
// package initialization and is immutable thereafter.
package refsample
