// Package validation holds the pure value checks and normalisers attached to
// form items. Validators answer whether a raw string is acceptable; formatters
// map raw input onto its canonical display form and must be idempotent, so
// re-formatting an already formatted value is a no-op.
package validation
