package planner

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/cli-utils/pkg/kstatus/status"
)

// awaitEstablished polls a CustomResourceDefinition until its status
// carries an Established condition with status "True", or the context's
// 10-second deadline expires. The poll uses the same dynamic resource
// interface as the apply call, so no extra client wiring is required.
func (c *Client) awaitEstablished(ctx context.Context, dr dynamicGetter, name string) error {
	ctx, cancel := context.WithTimeout(ctx, crdEstablishTimeoutSeconds*time.Second)
	defer cancel()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		cur, err := dr.Get(ctx, name, metav1.GetOptions{})
		if err == nil && isEstablished(cur) {
			return nil
		}
		select {
		case <-ctx.Done():
			return errEstablishedWait
		case <-ticker.C:
		}
	}
}

// dynamicGetter is the subset of dynamic.ResourceInterface awaitEstablished
// needs, kept narrow so it can be exercised with a fake in tests.
type dynamicGetter interface {
	Get(ctx context.Context, name string, opts metav1.GetOptions, subresources ...string) (*unstructured.Unstructured, error)
}

// isEstablished reports whether cli-utils' generic status computation
// considers the CustomResourceDefinition Current - the same status
// machinery kstatus uses to read a CRD's Established condition when
// determining readiness for any resource kind.
func isEstablished(u *unstructured.Unstructured) bool {
	result, err := status.Compute(u)
	if err != nil {
		return false
	}
	return result.Status == status.CurrentStatus
}
