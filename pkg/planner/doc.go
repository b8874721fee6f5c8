// Package planner applies and deletes ingested manifests against a live
// Kubernetes cluster.
//
// Manifests are first partitioned into CustomResourceDefinitions and
// dynamic objects by attempting to decode each into a CRD; anything that
// fails decodes as a dynamic object (partition.go). Apply runs CRDs through
// server-side apply with field manager "kct-crds", waits for each to reach
// the Established condition, refreshes API discovery, then applies every
// dynamic object with field manager "kct-dyns" (discovery.go, wait.go).
// Delete walks the manifest list in reverse, deleting dynamic objects
// before CRDs. Every object within a phase is applied or deleted
// concurrently; phases themselves are sequential so CRDs are always
// established before any instance of their kind is patched.
package planner
