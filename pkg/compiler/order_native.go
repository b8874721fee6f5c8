package compiler

import (
	"fmt"

	"github.com/go-kure/kure/pkg/ingestor"
)

// nativeInOrder implements the host side of sdk.inOrder(fields, object):
// for every key of object that also appears in fields, stamp that value's
// metadata.annotations["kct.io/order"] with its index in fields.
func nativeInOrder(args []interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("inOrder expects (fields, object)")
	}
	rawFields, ok := args[0].([]interface{})
	if !ok {
		return nil, fmt.Errorf("inOrder: fields must be an array")
	}
	object, ok := args[1].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("inOrder: object must be an object")
	}

	order := make(map[string]int, len(rawFields))
	for i, f := range rawFields {
		name, ok := f.(string)
		if !ok {
			return nil, fmt.Errorf("inOrder: fields must be strings")
		}
		order[name] = i
	}

	out := make(map[string]interface{}, len(object))
	for key, value := range object {
		idx, wanted := order[key]
		if !wanted {
			out[key] = value
			continue
		}
		out[key] = withOrderAnnotation(value, ingestor.EncodeOrderEntry(key, idx))
	}
	return out, nil
}

func withOrderAnnotation(value interface{}, annotation string) interface{} {
	manifest, ok := value.(map[string]interface{})
	if !ok {
		return value
	}
	clone := make(map[string]interface{}, len(manifest))
	for k, v := range manifest {
		clone[k] = v
	}
	meta, _ := clone["metadata"].(map[string]interface{})
	newMeta := make(map[string]interface{}, len(meta)+1)
	for k, v := range meta {
		newMeta[k] = v
	}
	annotations, _ := newMeta["annotations"].(map[string]interface{})
	newAnnotations := make(map[string]interface{}, len(annotations)+1)
	for k, v := range annotations {
		newAnnotations[k] = v
	}
	newAnnotations["kct.io/order"] = annotation
	newMeta["annotations"] = newAnnotations
	clone["metadata"] = newMeta
	return clone
}
