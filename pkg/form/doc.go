// Package form groups declarative items into an ordered container and runs
// whole-form validation. Validation visits every item, without stopping at the
// first failure, so the presentation layer can flag all invalid items at once.
package form
