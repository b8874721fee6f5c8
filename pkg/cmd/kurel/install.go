package kurel

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/go-kure/kure/pkg/cmd/shared"
	"github.com/go-kure/kure/pkg/errors"
	"github.com/go-kure/kure/pkg/planner"
)

func newInstallCommand(verbosity *int) *cobra.Command {
	var src sourceOptions
	var kubeconfig string

	cmd := &cobra.Command{
		Use:     "install <package>",
		Aliases: []string{"i"},
		Short:   "Compile a package and apply its manifests to a cluster",
		Long: `Install renders a package the same way render does, then applies
every manifest to the target cluster: CustomResourceDefinitions first,
awaited until Established, then every other object, each server-side
applied with force enabled. "<path> created" is printed as each unit of
work succeeds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := shared.NewLogger(*verbosity)
			manifests, err := src.compile(log, args[0])
			if err != nil {
				return errors.Wrap(err, "install failed")
			}

			cfg, err := loadRESTConfig(kubeconfig)
			if err != nil {
				return errors.Wrap(err, "failed to load cluster configuration")
			}
			client, err := planner.NewClient(cfg, log)
			if err != nil {
				return errors.Wrap(err, "failed to build cluster client")
			}

			return client.Apply(context.Background(), manifests)
		},
	}

	src.addFlags(cmd.Flags())
	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "path to a kubeconfig file (default: in-cluster, falling back to $HOME/.kube/config)")
	return cmd
}
