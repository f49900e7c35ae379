// Package selector implements the counter selector (spec §4.7): a per-state
// step function from energy level to action, built by the fixpoint engine in
// package fixpoint via its OnUpdate hook, and consumed at runtime by
// CounterStrategy to pick actions as energy is spent and recharged at
// reloads.
//
// A CounterSelector holds one SelectionRule per state. A SelectionRule is a
// partial function ℕ → Action represented by its (lower bound, action)
// breakpoints: SelectAction(e) returns the action registered at the
// largest breakpoint not exceeding e. CounterStrategy layers the alternating
// next-action/update-state protocol and the energy bookkeeping (recharge to
// capacity when the action was played from a reload, then subtract its
// consumption) on top of a selector.
package selector
