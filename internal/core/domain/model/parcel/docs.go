// Package parcel contains the Package aggregate and its Status value
// object. A package is created unassigned by an administrator, becomes
// assigned when a courier selects it, and stays mutable (by the admin
// for any field, by its assigned courier for content fields) until it
// is deleted.
package parcel
