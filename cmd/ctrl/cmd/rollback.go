package cmd

import (
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"we.com/marlin/deploy"
	"we.com/marlin/soa"
)

var (
	rollbackSoaDir    string
	rollbackService   string
	rollbackCluster   string
	rollbackInstances string
	rollbackCommit    string
)

func init() {
	cmdRollback.Flags().StringVarP(&rollbackSoaDir, "soa-dir", "d", "/etc/marlin/soa", "SOA configuration directory to read from")
	cmdRollback.Flags().StringVarP(&rollbackService, "service", "s", "", "service to roll back")
	cmdRollback.Flags().StringVar(&rollbackCluster, "cluster", "", "cluster to roll back")
	cmdRollback.Flags().StringVar(&rollbackInstances, "instances", "", "comma separated instances, empty means all")
	cmdRollback.Flags().StringVar(&rollbackCommit, "commit", "", "commit to roll back to")
	cmdRollback.MarkFlagRequired("service")
	cmdRollback.MarkFlagRequired("cluster")
	cmdRollback.MarkFlagRequired("commit")

	rootCmd.AddCommand(cmdRollback)
}

var cmdRollback = &cobra.Command{
	Use:   "rollback",
	Short: "roll instances of a service back to an older commit",
	Long: `validate the requested instances against the service's known set,
then mark every valid instance for deployment of the given commit`,
	Run: func(cmd *cobra.Command, args []string) {
		prov := &soa.DirProvider{Root: rollbackSoaDir}

		var instances []string
		if rollbackInstances != "" {
			instances = strings.Split(rollbackInstances, ",")
		}

		err := deploy.Rollback(deploy.GitPusher{}, prov, rollbackService, rollbackCluster,
			instances, rollbackCommit)
		if err != nil {
			glog.Errorf("rollback %v on %v: %v", rollbackService, rollbackCluster, err)
			os.Exit(1)
		}
	},
}
