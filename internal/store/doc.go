// Package store holds the project list and fans out change notifications.
//
// This package is internal to ProjectBoard. It owns the canonical, ordered
// list of project records and implements a publish-subscribe pattern so that
// every view re-renders from the same state.
//
// The main components are:
//
//   - [Store]: Interface defining the subscribe, add and move operations
//   - [MemoryStore]: In-memory implementation of Store
//   - [Project]: A single project record
//   - [Status]: The two states a project can be in
//
// Listeners receive snapshots: independent copies of the full record list.
// Nothing a listener does to its snapshot can reach the store's own records.
//
// Users of the projectboard library should not need to interact with this
// package directly. The store is created and injected by the Board.
package store
