package io

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	yamlutil "k8s.io/apimachinery/pkg/util/yaml"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/go-kure/kure/pkg/errors"
)

// parse decodes a stream of YAML or JSON documents into unstructured
// objects. A manifest is rejected with checkType unless it carries both
// apiVersion and kind; every other object shape the compiler can produce
// (CRDs, dynamic resources, arbitrary CRs) decodes without a registered
// Go type, matching how the cluster planner treats manifests as opaque
// until it consults API discovery.
func parse(yamlbytes []byte) ([]client.Object, error) {
	decoder := yamlutil.NewYAMLOrJSONDecoder(bytes.NewReader(yamlbytes), 4096)

	var retVal []client.Object
	var errs []error

	for {
		var raw runtime.RawExtension
		if err := decoder.Decode(&raw); err != nil {
			if err == io.EOF {
				break
			}
			errs = append(errs, fmt.Errorf("decode document: %w", err))
			continue
		}
		if len(bytes.TrimSpace(raw.Raw)) == 0 {
			continue
		}
		u := &unstructured.Unstructured{}
		if err := u.UnmarshalJSON(raw.Raw); err != nil {
			errs = append(errs, fmt.Errorf("decode object: %w", err))
			continue
		}
		if err := checkType(u); err != nil {
			errs = append(errs, err)
			continue
		}
		retVal = append(retVal, u)
	}

	if len(errs) > 0 {
		return retVal, &errors.ParseErrors{Errors: errs}
	}
	return retVal, nil
}

// ParseFile reads the YAML file at path and returns the manifests defined
// within as unstructured objects. An error is returned if the file cannot
// be read or if decoding any document fails.
func ParseFile(path string) ([]client.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// ParseYAML parses YAML or JSON bytes into unstructured manifests. An
// error is returned if decoding any document fails.
func ParseYAML(data []byte) ([]client.Object, error) {
	return parse(data)
}

func checkType(u *unstructured.Unstructured) error {
	if u.GetKind() == "" {
		return fmt.Errorf("cannot apply object without valid TypeMeta")
	}
	if u.GetAPIVersion() == "" {
		return fmt.Errorf("cannot apply object without valid TypeMeta")
	}
	return nil
}
