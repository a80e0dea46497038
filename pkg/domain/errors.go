package domain

import "errors"

// ErrNoReaction is returned when a contingency handler is registered
// without a reaction.
var ErrNoReaction = errors.New("contingency handler has no reaction")

// ErrUnknownNodeType is returned when a declarative tree references a node
// type that is not registered.
var ErrUnknownNodeType = errors.New("unknown node type")

// ErrNoRoot is returned when a tree definition has no root node.
var ErrNoRoot = errors.New("tree has no root node")
