// Package payment defines payment methods, the per-method details a form
// produces, and the ComponentData envelope handed to delegates on submit.
package payment
