// Package lists defines the shared types and helpers used across the lists codebase:
// UUID identity stamps for lists and their nodes, the shared error codes, and the
// logging configuration. The containers themselves live in subpackages: list holds
// the singly linked list, doublylist the doubly linked list, and cache an MRU cache
// built on top of the latter.
//
// The containers are single threaded by design. No operation blocks or retains a
// borrowed reference across calls; callers needing concurrent access must wrap a
// whole list in their own mutual exclusion.
package lists
