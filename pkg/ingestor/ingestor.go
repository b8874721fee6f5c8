package ingestor

import (
	"container/heap"
	"sort"
)

// frame is one pending (tracking, value) pair awaiting expansion during the
// depth-first walk.
type frame struct {
	tracking Tracking
	value    interface{}
}

// found is a harvested manifest queued for final ordering.
type found struct {
	tracking Tracking
	value    map[string]interface{}
}

// foundHeap is a min-heap over found items ordered by Tracking.Less, giving
// the final totally-ordered manifest sequence.
type foundHeap []found

func (h foundHeap) Len() int            { return len(h) }
func (h foundHeap) Less(i, j int) bool  { return h[i].tracking.Less(h[j].tracking) }
func (h foundHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *foundHeap) Push(x interface{}) { *h = append(*h, x.(found)) }
func (h *foundHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Ingest walks value depth-first, harvesting Kubernetes manifests and
// returning them in the total order the design specifies: the user's
// explicit "kct.io/order" annotation first, Kubernetes kind precedence
// breaking ties at equal order, then alphabetic field name.
func Ingest(value interface{}, filter Filter) ([]Manifest, error) {
	h := &foundHeap{}
	stack := []frame{{tracking: nil, value: value}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if conforms(f.value) {
			m := f.value.(map[string]interface{})
			kind, err := kindOf(m)
			if err != nil {
				return nil, err
			}
			entries, err := parseOrder(annotationOf(m))
			if err != nil {
				return nil, err
			}
			tracking := f.tracking.ordered(entries).withKind(kind)
			path := tracking.path()
			if filter.Pass(path) {
				heap.Push(h, found{tracking: tracking, value: m})
			}
			continue
		}

		obj, ok := f.value.(map[string]interface{})
		if !ok {
			return nil, &NotObjectError{Path: f.tracking.path()}
		}

		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		depth := f.tracking.depth() + 1
		size := len(obj)
		// push in reverse so pop order matches ascending key order; final
		// ordering is determined by the heap, not stack pop order, but this
		// keeps traversal deterministic for any future error short-circuit.
		for i := len(keys) - 1; i >= 0; i-- {
			k := keys[i]
			if !IsValidSegment(k) {
				return nil, &PathError{Segment: k}
			}
			track := Track{Field: k, Depth: depth, Order: size}
			stack = append(stack, frame{tracking: f.tracking.push(track), value: obj[k]})
		}
	}

	manifests := make([]Manifest, 0, h.Len())
	for h.Len() > 0 {
		item := heap.Pop(h).(found)
		manifests = append(manifests, Manifest{Path: item.tracking.path(), Value: item.value})
	}
	return manifests, nil
}
