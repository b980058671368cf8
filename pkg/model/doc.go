// Package model defines the declarative form items a payment form is built
// from. Items are plain values the presentation layer reads: a header, text
// inputs carrying a validator/formatter pair, and the submit button. Text
// inputs keep their value in formatted form at all times and cache the result
// of their last validation so a renderer can highlight every failing item
// after a whole-form pass. Localisable strings are declared through
// LocalizationKeys hints and resolved by a Decorator before first use.
package model
