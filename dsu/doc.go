// Package dsu implements the disjoint-set (union-find) data structure:
// a collection of n elements partitioned into mergeable sets.
//
// The implementation is weighted quick-union by size with full path
// compression: Find walks to the root and then re-points every visited node
// directly at it, and Union attaches the smaller tree under the larger.
// Together these make Find, Union and Connected amortized O(α(n)),
// effectively constant for any realistic n.
//
// The mst package drives Kruskal's cycle rejection with this structure.
//
// Complexity:
//
//   - Time:   O(α(n)) amortized per operation
//   - Memory: O(n) (parent and size arrays)
package dsu
