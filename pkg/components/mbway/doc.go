// Package mbway implements the MB Way payment component: a form that asks
// for the shopper's telephone number and submits it as MBWayDetails.
package mbway
