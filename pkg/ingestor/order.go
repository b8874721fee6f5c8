package ingestor

import (
	"fmt"
	"strconv"
	"strings"
)

// kindOrder is Helm's install-precedence list; unknown kinds sort after
// every entry here.
var kindOrder = [...]string{
	"Namespace", "NetworkPolicy", "ResourceQuota", "LimitRange",
	"PodSecurityPolicy", "PodDisruptionBudget", "ServiceAccount", "Secret",
	"SecretList", "ConfigMap", "StorageClass", "PersistentVolume",
	"PersistentVolumeClaim", "CustomResourceDefinition", "ClusterRole",
	"ClusterRoleList", "ClusterRoleBinding", "ClusterRoleBindingList", "Role",
	"RoleList", "RoleBinding", "RoleBindingList", "Service", "DaemonSet",
	"Pod", "ReplicationController", "ReplicaSet", "Deployment",
	"HorizontalPodAutoscaler", "StatefulSet", "Job", "CronJob",
	"IngressClass", "Ingress", "APIService",
}

func kindPriority(kind string) int {
	for i, k := range kindOrder {
		if k == kind {
			return i
		}
	}
	return len(kindOrder)
}

// Track is one ancestor step on the path from the JSON root to a manifest.
// Kind is set only on the terminal (manifest) track.
type Track struct {
	Field string
	Depth int
	Order int
	Kind  string
}

// Tracking is the chain of Track records from root to a manifest, in order.
type Tracking []Track

func (t Tracking) depth() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Depth
}

// push returns a new Tracking with track appended, leaving t unmodified so
// sibling branches of the walk never observe each other's mutations.
func (t Tracking) push(track Track) Tracking {
	next := make(Tracking, len(t), len(t)+1)
	copy(next, t)
	return append(next, track)
}

// withKind returns a copy of t with the terminal track's Kind set.
func (t Tracking) withKind(kind string) Tracking {
	if len(t) == 0 {
		return t
	}
	next := make(Tracking, len(t))
	copy(next, t)
	next[len(next)-1].Kind = kind
	return next
}

// path renders the tracking chain as a POSIX-like absolute path.
func (t Tracking) path() string {
	fields := make([]string, len(t))
	for i, track := range t {
		fields[i] = track.Field
	}
	return joinPath(fields)
}

// Less implements the total order: depth-equal tracks compare by order, then
// kind precedence (only when both ends have a kind), then field name;
// depth-unequal tracks compare by order then field.
func (t Tracking) Less(other Tracking) bool {
	n := len(t)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		a, b := t[i], other[i]
		if a.Depth == b.Depth {
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			if a.Kind != "" && b.Kind != "" && a.Kind != b.Kind {
				return kindPriority(a.Kind) < kindPriority(b.Kind)
			}
			if a.Field != b.Field {
				return a.Field < b.Field
			}
			continue
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.Field != b.Field {
			return a.Field < b.Field
		}
	}
	return len(t) < len(other)
}

// TrackingFormatError reports a malformed "field:depth:order" order entry.
type TrackingFormatError struct{ Raw string }

func (e *TrackingFormatError) Error() string {
	return fmt.Sprintf("order annotation entry %q must be \"field:depth:order\"", e.Raw)
}

// TrackingPartError reports which of field/depth/order failed to parse.
type TrackingPartError struct{ Part, Raw string }

func (e *TrackingPartError) Error() string {
	return fmt.Sprintf("order annotation entry %q has an invalid %s part", e.Raw, e.Part)
}

// orderAnnotationKey is the manifest annotation carrying a sparse,
// backwards partial order, written by the sdk.inOrder template helper.
const orderAnnotationKey = "kct.io/order"

// parseOrder decodes a "kct.io/order" annotation value into its Track
// entries, in file (encoded, backwards) order.
func parseOrder(annotation string) ([]Track, error) {
	if annotation == "" {
		return nil, nil
	}
	var tracks []Track
	for _, part := range strings.Split(annotation, "/") {
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, &TrackingFormatError{Raw: part}
		}
		field, depthStr, orderStr := fields[0], fields[1], fields[2]
		if !IsValidSegment(field) {
			return nil, &TrackingPartError{Part: "field", Raw: part}
		}
		depth, err := strconv.Atoi(depthStr)
		if err != nil || depth < 0 {
			return nil, &TrackingPartError{Part: "depth", Raw: part}
		}
		order, err := strconv.Atoi(orderStr)
		if err != nil || order < 0 {
			return nil, &TrackingPartError{Part: "order", Raw: part}
		}
		tracks = append(tracks, Track{Field: field, Depth: depth, Order: order})
	}
	return tracks, nil
}

// ordered overlays the parsed annotation entries onto t, matching each
// entry's field against the tracking chain and its depth against
// (len(t) - entry.Depth) — the annotation's depth is counted backwards from
// the manifest itself so the same value stays correct regardless of how
// deep the manifest ends up nested via include().
func (t Tracking) ordered(entries []Track) Tracking {
	if len(entries) == 0 {
		return t
	}
	length := len(t)
	// entries are file (encoded) order; reverse to natural order.
	natural := make([]Track, len(entries))
	for i, e := range entries {
		natural[len(entries)-1-i] = e
	}

	result := make(Tracking, len(t))
	copy(result, t)
	oi := 0
	for pi := range result {
		if oi >= len(natural) {
			break
		}
		o := natural[oi]
		if o.Field == result[pi].Field && (length-o.Depth) == result[pi].Depth {
			result[pi].Order = o.Order
			oi++
		}
	}
	return result
}

// EncodeOrderEntry builds a single-entry "kct.io/order" annotation value
// placing field at order among its siblings. field is the key of the
// manifest this annotation is attached to, so its depth is 0 (counted
// backwards from the manifest itself). A single-entry annotation
// is its own reverse, so no backwards encoding is needed here. It is the
// host-side half of the sdk.inOrder template helper: inOrder(fields,
// object) calls this once per key of object, using that key's index in
// fields as order.
func EncodeOrderEntry(field string, order int) string {
	return fmt.Sprintf("/%s:0:%d", field, order)
}
