// Package fields maps raw sidecar tags onto the fixed catalog of typed
// output fields a library record carries.
//
// Catalog is the primary table: one Converter per output field, each with an
// ordered alias list and a decode kind. DependentCatalog runs afterwards and
// computes fields from already-converted values instead of raw tags, which
// is how year/month/day fall out of a date and how date fields lose their
// precision annotation before storage.
//
// Decode failures surface as *DecodeError so callers can report the field,
// the offending alias, and the raw value. A malformed numeric tag usually
// means the sidecar data is corrupt, so these are never swallowed.
package fields
