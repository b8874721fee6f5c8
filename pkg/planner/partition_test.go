package planner

import (
	"testing"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/go-kure/kure/pkg/ingestor"
)

func crdManifest(path, name string) ingestor.Manifest {
	return ingestor.Manifest{
		Path: path,
		Value: map[string]interface{}{
			"apiVersion": "apiextensions.k8s.io/v1",
			"kind":       "CustomResourceDefinition",
			"metadata":   map[string]interface{}{"name": name},
			"spec": map[string]interface{}{
				"group": "example.io",
				"names": map[string]interface{}{
					"plural": "widgets",
					"kind":   "Widget",
				},
				"scope": "Namespaced",
				"versions": []interface{}{
					map[string]interface{}{
						"name":    "v1",
						"served":  true,
						"storage": true,
					},
				},
			},
		},
	}
}

func dynamicManifest(path, kind, name string) ingestor.Manifest {
	return ingestor.Manifest{
		Path: path,
		Value: map[string]interface{}{
			"apiVersion": "v1",
			"kind":       kind,
			"metadata":   map[string]interface{}{"name": name},
		},
	}
}

func TestPartition_SplitsCRDsFromDynamics(t *testing.T) {
	manifests := []ingestor.Manifest{
		dynamicManifest("/a", "ConfigMap", "a"),
		crdManifest("/widget-crd", "widgets.example.io"),
		dynamicManifest("/b", "Secret", "b"),
	}

	crds, dynamics := partition(manifests)
	if len(crds) != 1 || crds[0].path != "/widget-crd" {
		t.Fatalf("expected 1 CRD at /widget-crd, got %#v", crds)
	}
	if len(dynamics) != 2 {
		t.Fatalf("expected 2 dynamic objects, got %d", len(dynamics))
	}
}

func TestIsCRD_RejectsWrongKind(t *testing.T) {
	u := &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "v1",
		"kind":       "ConfigMap",
	}}
	if isCRD(u) {
		t.Fatal("ConfigMap should not be classified as a CRD")
	}
}

func TestIsEstablished(t *testing.T) {
	established := &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "apiextensions.k8s.io/v1",
		"kind":       "CustomResourceDefinition",
		"status": map[string]interface{}{
			"conditions": []interface{}{
				map[string]interface{}{"type": "NamesAccepted", "status": "True"},
				map[string]interface{}{"type": "Established", "status": "True"},
			},
		},
	}}
	if !isEstablished(established) {
		t.Fatal("expected Established condition to be detected")
	}

	pending := &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "apiextensions.k8s.io/v1",
		"kind":       "CustomResourceDefinition",
		"status": map[string]interface{}{
			"conditions": []interface{}{
				map[string]interface{}{"type": "Established", "status": "False"},
			},
		},
	}}
	if isEstablished(pending) {
		t.Fatal("expected pending Established condition to be rejected")
	}

	if isEstablished(&unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "apiextensions.k8s.io/v1",
		"kind":       "CustomResourceDefinition",
	}}) {
		t.Fatal("expected missing status to be rejected")
	}
}
