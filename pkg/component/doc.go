// Package component drives a declared form through the validate-all-then-
// submit transaction.
//
// A Controller owns one form container, binds the form's submit button, and
// moves between two states. From StateIdle a submit validates every item; on
// success the form is locked, the button shows its activity indicator, the
// payload is assembled, and the registered Delegate receives it. The
// controller stays in StateSubmitting until the host calls StopLoading, which
// unlocks the form and runs the optional completion callback. There is no
// internal timeout: a host that never calls StopLoading leaves the form
// locked.
//
// The delegate is not owned by the controller. Hosts register it with
// SetDelegate and clear it with SetDelegate(nil).
package component
