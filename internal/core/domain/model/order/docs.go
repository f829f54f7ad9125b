// Package order contains the Order aggregate and its value objects.
//
// The aggregate mirrors the backend order record for the duration of one
// operation and enforces the local fulfillment rules: the one-time push, the
// edit freeze after a push, the idempotent tracking merge and the cancel
// preconditions. The backend order service remains the system of record.
package order
