package kurel

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/go-kure/kure/pkg/cmd/shared"
	"github.com/go-kure/kure/pkg/errors"
	"github.com/go-kure/kure/pkg/planner"
)

func newUninstallCommand(verbosity *int) *cobra.Command {
	var src sourceOptions
	var kubeconfig string

	cmd := &cobra.Command{
		Use:     "uninstall <package>",
		Aliases: []string{"u"},
		Short:   "Compile a package and delete its manifests from a cluster",
		Long: `Uninstall renders a package the same way render does, then deletes
every manifest from the target cluster in reverse ingestion order: every
non-CRD object first, then CustomResourceDefinitions, so instances are
always removed before the type that defines them. "<path> deleted" is
printed as each unit of work succeeds.

The same -i/-s/--release/--only/--except flags as render and install select
which manifests to delete; they must resolve to the same release that was
installed for the deletion to target the right objects.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := shared.NewLogger(*verbosity)
			manifests, err := src.compile(log, args[0])
			if err != nil {
				return errors.Wrap(err, "uninstall failed")
			}

			cfg, err := loadRESTConfig(kubeconfig)
			if err != nil {
				return errors.Wrap(err, "failed to load cluster configuration")
			}
			client, err := planner.NewClient(cfg, log)
			if err != nil {
				return errors.Wrap(err, "failed to build cluster client")
			}

			return client.Delete(context.Background(), manifests)
		},
	}

	src.addFlags(cmd.Flags())
	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "path to a kubeconfig file (default: in-cluster, falling back to $HOME/.kube/config)")
	return cmd
}
