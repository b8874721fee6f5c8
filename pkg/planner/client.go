package planner

import (
	"fmt"

	"k8s.io/client-go/discovery"
	"k8s.io/client-go/discovery/cached/memory"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/restmapper"

	"github.com/go-kure/kure/pkg/logger"
)

// fieldManagerCRDs and fieldManagerDynamics identify the two server-side
// apply passes on the wire; the API server keeps their managed fields
// separate so a later apply of one phase never conflicts with the other.
const (
	fieldManagerCRDs     = "kct-crds"
	fieldManagerDynamics = "kct-dyns"

	crdEstablishTimeoutSeconds = 10
)

// Client holds the dynamic and discovery handles the planner drives
// concurrently. The RESTMapper is reset and rebuilt between the CRD and
// dynamic phases so newly installed CRDs are visible to the second pass;
// that refresh is the only state shared across apply's two phases.
type Client struct {
	dyn    dynamic.Interface
	disc   discovery.DiscoveryInterface
	mapper *restmapper.DeferredDiscoveryRESTMapper
	log    logger.Logger

	// Progress is called once per unit of work with its manifest path and
	// "created" or "deleted" on success. It is a plain observable side
	// effect, independent of the logger's verbosity level - callers that
	// want silence can replace it with a no-op. Defaults to printing a
	// "<path> <verb>" line to stdout.
	Progress func(path, verb string)
}

// NewClient builds a Client from a REST config, matching the discovery and
// dynamic client wiring used by kubectl-style tooling: a cached discovery
// client feeds a deferred REST mapper, and a dynamic client issues typed
// or unstructured requests against any GVR the mapper resolves.
func NewClient(cfg *rest.Config, log logger.Logger) (*Client, error) {
	if log == nil {
		log = logger.Default()
	}
	dyn, err := dynamic.NewForConfig(cfg)
	if err != nil {
		return nil, err
	}
	disc, err := discovery.NewDiscoveryClientForConfig(cfg)
	if err != nil {
		return nil, err
	}
	mapper := restmapper.NewDeferredDiscoveryRESTMapper(memory.NewMemCacheClient(disc))
	return &Client{
		dyn:    dyn,
		disc:   disc,
		mapper: mapper,
		log:    log,
		Progress: func(path, verb string) {
			fmt.Printf("%s %s\n", path, verb)
		},
	}, nil
}

// refreshDiscovery drops the mapper's cache so the next RESTMapping call
// re-queries the API server, picking up group/version/kinds introduced by
// CRDs applied in the previous phase.
func (c *Client) refreshDiscovery() {
	c.mapper.Reset()
}
