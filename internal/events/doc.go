// Package events provides the in-process publish/subscribe primitive
// behind the live task-created stream: a topic-keyed Bus fanning
// payloads out to independent subscriber streams, and a predicate
// filter narrowing a stream to one owner.
//
// The bus is best-effort with no guarantees regarding durability,
// retries, or replay. Events published while no subscriber is
// registered are dropped. It is not a message broker.
package events
