package planner

import "fmt"

// ClusterError wraps a transport, auth, discovery, or apply failure for a
// single manifest so callers can report which path in the ingested tree
// caused it. The underlying cluster error is surfaced verbatim in Error().
type ClusterError struct {
	Path  string
	cause error
}

func newClusterError(path string, cause error) *ClusterError {
	return &ClusterError{Path: path, cause: cause}
}

func (e *ClusterError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.cause)
}

func (e *ClusterError) Unwrap() error { return e.cause }

// BatchError aggregates every ClusterError produced by a single apply or
// delete call. Kubernetes server-side apply offers no cross-resource
// atomicity, so a batch failure reports every individual failure rather
// than just the first.
type BatchError struct {
	Errors []error
}

func (e *BatchError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d of a batch failed, first: %v", len(e.Errors), e.Errors[0])
}

func (e *BatchError) Unwrap() []error { return e.Errors }

var (
	errNoTypeMeta      = fmt.Errorf("cannot apply object without valid TypeMeta")
	errUnresolvedGVK   = fmt.Errorf("unable to resolve resource and capabilities")
	errEstablishedWait = fmt.Errorf("CustomResourceDefinition did not become Established")
)
