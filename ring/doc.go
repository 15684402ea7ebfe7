// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity FIFO ring buffer over contiguous storage.
// Implements wrap-aware single and bulk insertion/removal, non-destructive
// positional reads, partial and complete clearing, and synchronous change
// notification. Owned adds ownership semantics for reference-type elements.
// See ring.go and owned.go for implementation details.
package ring
