package planner

import (
	"context"
	"sync"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"

	"github.com/go-kure/kure/pkg/ingestor"
)

// Apply runs the two-phase cluster apply: every CRD is server-side applied
// and awaited for Established concurrently, discovery is refreshed, then
// every dynamic object is server-side applied concurrently. Each task in a
// phase runs independently - a CRD establishment timeout is local to that
// task and does not cancel its siblings - and the phase join surfaces
// every failure rather than just the first, since server-side apply gives
// no cross-resource atomicity to roll back.
func (c *Client) Apply(ctx context.Context, manifests []ingestor.Manifest) error {
	crds, dynamics := partition(manifests)

	if len(crds) > 0 {
		if err := c.applyCRDs(ctx, crds); err != nil {
			return err
		}
		c.refreshDiscovery()
	}

	if len(dynamics) > 0 {
		if err := c.applyDynamics(ctx, dynamics); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) applyCRDs(ctx context.Context, crds []unit) error {
	return runBatch(crds, func(u unit) error {
		dr, err := c.resourceFor(u.value)
		if err != nil {
			return newClusterError(u.path, err)
		}
		if err := c.serverSideApply(ctx, dr, u.value, fieldManagerCRDs); err != nil {
			return newClusterError(u.path, err)
		}
		if err := c.awaitEstablished(ctx, dr, u.value.GetName()); err != nil {
			return newClusterError(u.path, err)
		}
		c.log.Debug("established %s", u.path)
		c.Progress(u.path, "created")
		return nil
	})
}

func (c *Client) applyDynamics(ctx context.Context, dynamics []unit) error {
	return runBatch(dynamics, func(u unit) error {
		dr, err := c.resourceFor(u.value)
		if err != nil {
			return newClusterError(u.path, err)
		}
		if err := c.serverSideApply(ctx, dr, u.value, fieldManagerDynamics); err != nil {
			return newClusterError(u.path, err)
		}
		c.Progress(u.path, "created")
		return nil
	})
}

func (c *Client) serverSideApply(ctx context.Context, dr resourceInterface, u *unstructured.Unstructured, fieldManager string) error {
	if u.GetKind() == "" || u.GetAPIVersion() == "" {
		return errNoTypeMeta
	}
	data, err := u.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = dr.Patch(ctx, u.GetName(), types.ApplyPatchType, data, metav1.PatchOptions{
		FieldManager: fieldManager,
		Force:        ptr.To(true),
	})
	return err
}

// resourceInterface is the subset of dynamic.ResourceInterface the planner
// exercises, letting awaitEstablished's narrower dynamicGetter and a wider
// patch/delete surface share one concrete type (*unstructured) without
// importing the full interface into every file.
type resourceInterface interface {
	dynamicGetter
	Patch(ctx context.Context, name string, pt types.PatchType, data []byte, opts metav1.PatchOptions, subresources ...string) (*unstructured.Unstructured, error)
	Delete(ctx context.Context, name string, opts metav1.DeleteOptions, subresources ...string) error
}

// runBatch spawns one goroutine per unit, joins all, and aggregates every
// failure into a BatchError. Tasks do not share a cancellation context, so
// one unit's failure never aborts its siblings mid-flight.
func runBatch(units []unit, do func(unit) error) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	for _, u := range units {
		u := u
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := do(u); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(errs) == 0 {
		return nil
	}
	return &BatchError{Errors: errs}
}
