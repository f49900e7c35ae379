// Package serialize implements the boundary import/export surfaces named in
// spec §6: a JSON schema where nodes carry a reload flag and edges carry a
// consumption and a probability, a PRISM-like plain-text description with a
// reload state-label, a target state-label and an action-based consumption
// reward, and a YAML run-configuration loader for cmd/fimdpctl.
//
// None of this is core solver logic; bit-exact round-trip is not required,
// only semantic equivalence (spec §6).
package serialize
