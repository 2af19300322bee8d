package model

// Identity describes the current caller as established by the auth
// middleware. The core never constructs one itself, it only consults it.
type Identity struct {
	Email string
	Admin bool
}
