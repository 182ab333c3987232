// Package events defines the allocation related events emitted on the
// event bus.
//
// Available event types:
//   - RepairEvent: a placeholder player was injected into a cohort
//   - CohortSolvedEvent: a cohort was partitioned successfully
//   - CohortFailedEvent: a cohort could not be partitioned
package events
