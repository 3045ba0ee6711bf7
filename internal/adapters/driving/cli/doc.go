// Package cli provides the philcanon command line interface.
//
// Commands are registered on a package-level root command. Services are
// built lazily from a Wiring once flags are parsed, so --config and the
// per-command overrides take effect before anything touches the disk.
package cli
