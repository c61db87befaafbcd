// Package osloplan provides a verified catalog of Oslo kommune planning
// documents: a fixed, deduplicated set of municipal plans grouped into
// eight categories, persisted in SQLite and queryable by text search,
// category filter, and aggregate statistics.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, fiber/, bloom/).
package osloplan
