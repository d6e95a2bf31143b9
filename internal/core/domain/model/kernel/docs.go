// Package kernel contains shared domain value objects that do not belong
// to a single aggregate. Currently this is the TrackingCode identifying
// packages towards clients.
package kernel
