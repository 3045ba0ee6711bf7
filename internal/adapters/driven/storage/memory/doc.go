// Package memory provides in-memory implementations of the driven ports.
//
// The stores back runs with the journal disabled and are used throughout the
// tests. Nothing is persisted.
package memory
