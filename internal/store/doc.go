// Package store defines the persistence gateway interfaces for TaskHub
// entities, along with the sentinel errors shared by every
// implementation. Concrete backends live under internal/platform.
package store
