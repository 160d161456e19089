// Package utils provides common helpers shared by the ledger packages.
// It includes ordering of loosely typed record values and other logic that
// doesn't fit into domain-specific packages.
package utils
