package planner

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/go-kure/kure/pkg/ingestor"
)

// Delete walks manifests in reverse - the opposite of the Ingestor's total
// order - deleting dynamic objects first and CRDs last, so instances are
// always removed before the type that defines them. Discovery is not
// refreshed on the delete path; every GVK a delete needs was already
// resolvable when the matching object was applied.
func (c *Client) Delete(ctx context.Context, manifests []ingestor.Manifest) error {
	reversed := make([]ingestor.Manifest, len(manifests))
	for i, m := range manifests {
		reversed[len(manifests)-1-i] = m
	}
	crds, dynamics := partition(reversed)

	if err := runBatch(dynamics, func(u unit) error {
		if err := c.deleteOne(ctx, u); err != nil {
			return newClusterError(u.path, err)
		}
		c.Progress(u.path, "deleted")
		return nil
	}); err != nil {
		return err
	}

	return runBatch(crds, func(u unit) error {
		if err := c.deleteOne(ctx, u); err != nil {
			return newClusterError(u.path, err)
		}
		c.Progress(u.path, "deleted")
		return nil
	})
}

func (c *Client) deleteOne(ctx context.Context, u unit) error {
	dr, err := c.resourceFor(u.value)
	if err != nil {
		return err
	}
	return dr.Delete(ctx, u.value.GetName(), metav1.DeleteOptions{})
}
