// Package bruteforce provides a simple neighbour index that answers kNN
// queries by scanning every vector. It is the reference implementation for
// the deterministic ordering contract and supports a compact binary format
// for persistence in a fixture database.
package bruteforce
