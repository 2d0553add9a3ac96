// Package checklist manages the packing list and its progress.
//
// A Manager is created once per session with Load. It reads the list stored
// under DefaultKey, falls back to the trip's template when storage is empty,
// unreadable or holds something that is not a packing list, and from then on
// changes only through Toggle. Every toggle re-serializes the whole list and
// writes it back before the new list becomes visible.
//
// When the template changes between sessions the stored list is reconciled
// according to the Reconcile policy; ReconcileMerge is the default.
//
// Compute and ComputeCategory are pure and cheap enough to call on every
// render.
package checklist
