// Package core provides the Node and Route primitives the VRPTWMS solver's
// search engine is built on: immutable customer/depot data (NodeSpec) and
// the doubly linked, depot-sentinelled node sequence (Route, RouteNode) a
// vehicle route uses for O(1) splice and uniform interior-node iteration.
package core
