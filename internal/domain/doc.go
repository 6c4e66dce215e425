// Package domain defines the relay's core data models and contracts.
// It contains plain types, sentinel errors, the validation policy and the
// interfaces implemented by the service packages.
package domain
