// Package domain contains the pure data model of the copse engine: node
// statuses, the node capability interface, execution contexts and the
// parameter-binding vocabulary.
//
// The package is deliberately dependency-free. Behavior lives in pkg/control
// and pkg/composite; this package only defines the contracts they share.
package domain
