// Package logging provides the identity and filtering core of a logging
// facade: a process-wide catalogue of named log levels and log writers plus
// a per-writer bitmask that decides, with minimal overhead, whether a
// message at a given level should be emitted.
//
// Architecture:
//   - Lock-free hot path: name lookup after registration, IsActive checks
//     and tag-set comparison read immutable, atomically published snapshots
//     and never lock or allocate
//   - One coarse mutation lock: registrations and configuration installs
//     are rare, so a single mutex serializes all writes across the level,
//     tag and writer registries
//   - Copy-on-write publication: every structural change builds a fresh
//     snapshot and swaps an atomic pointer, so no reader ever observes a
//     partially initialized entity
//
// # Quick Start
//
//	writer, _ := logging.GetWriter("MyApp.Service")
//	level, _ := logging.GetLevel("Caching") // lazily created aspect level
//
//	logging.InstallConfiguration(logging.NewThresholdConfig(logging.LevelNotice, true))
//
//	if writer.IsActive(logging.LevelDebug) {
//	    writer.Write(logging.LevelDebug, "expensive debug dump")
//	}
//
// Writers can carry tags for subsystem-based filtering. Attaching tags
// derives a secondary writer sharing the primary's id and name:
//
//	tagged, _ := writer.WithTags("database", "query")
//	tagged.Write(logging.LevelInformational, "slow query")
//
// Secondary writers are tracked by weak reference only, so request-scoped
// tagged writers do not pin memory.
//
// The process-wide registry is available through Default and the
// package-level helpers. Tests should construct their own instances with
// NewRegistry instead of mutating the shared one.
package logging
