// Package types defines the value types shared by the collection and
// selection packages: the flattened Node, the Item and Section records
// produced by caller-supplied mappers, the tagged source Element, build
// limits, and typed errors.
//
// Design goals:
//   - Plain values. A Node is copied out of a collection, never shared.
//   - Explicit tags instead of shape sniffing: an Element says whether it is
//     an item or a section.
//   - Typed errors with stable categories (source/key/limit).
//
// This package has no dependencies beyond the standard library.
package types
