// Package point defines the shared coordinate and net data model used
// throughout the router: Point (a layer/x/y cell), Pin (a Point tagged
// with its owning net), and Net (an ordered, named sequence of pins).
//
// These types are plain value types with no pointers and no mutable
// state. Point and Pin are comparable, so they can be used directly as
// map keys and compared with ==; Net holds a slice of pins and is not
// comparable.
//
// Complexity: all operations in this package are O(1).
package point
