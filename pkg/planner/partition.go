package planner

import (
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/go-kure/kure/pkg/ingestor"
)

// unit is one ingested manifest carried alongside the path the Ingestor
// derived for it, used for progress reporting and error attribution.
type unit struct {
	path  string
	value *unstructured.Unstructured
}

// partition splits manifests into CRDs and dynamic objects. A manifest
// decodes as a CRD only if its kind/apiVersion round-trip into the
// apiextensions v1 type; any decode failure - wrong kind, wrong group,
// malformed spec - falls through to the dynamic object bucket, matching
// the "attempt then fall back" partitioning decision.
func partition(manifests []ingestor.Manifest) (crds, dynamics []unit) {
	for _, m := range manifests {
		u := &unstructured.Unstructured{Object: m.Value}
		if isCRD(u) {
			crds = append(crds, unit{path: m.Path, value: u})
		} else {
			dynamics = append(dynamics, unit{path: m.Path, value: u})
		}
	}
	return crds, dynamics
}

func isCRD(u *unstructured.Unstructured) bool {
	if u.GroupVersionKind().Kind != "CustomResourceDefinition" {
		return false
	}
	var crd apiextensionsv1.CustomResourceDefinition
	return runtime.DefaultUnstructuredConverter.FromUnstructured(u.Object, &crd) == nil
}
