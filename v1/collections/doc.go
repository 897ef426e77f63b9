// Package collections manages collections — static snapshots of
// pod-based indexes — on the control plane.
package collections
