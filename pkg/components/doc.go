// Package components maps payment method types onto the component that
// collects their details.
package components
