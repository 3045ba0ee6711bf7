// Package connectors provides the document sources philcanon rewrites.
// Each connector knows how to enumerate, read and persist documents
// from one kind of location; today that is the local filesystem.
package connectors
