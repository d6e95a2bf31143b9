// Package user contains the User identity aggregate and the Role value
// object. Users authenticate with an email and a bcrypt-hashed
// credential and act either as administrators or delivery couriers.
package user
