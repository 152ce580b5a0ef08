// Package optdoc provides an in-memory lookup table for machine-generated
// configuration option documentation. It loads the JSON option dumps produced
// by the NixOS and Home Manager documentation builds, normalizes them into a
// single record type, and answers prefix and substring queries against
// option names.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., json/, inmem/, fsnotify/).
package optdoc
