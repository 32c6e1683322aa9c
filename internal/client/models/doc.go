// Package models defines the client-side records handled by the sync
// engine: syncable entities, the outbox entry, sync categories and the
// status surface derived from the store.
package models
