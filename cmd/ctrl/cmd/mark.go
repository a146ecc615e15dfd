package cmd

import (
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"we.com/marlin/deploy"
)

var (
	markGitURL   string
	markCluster  string
	markInstance string
	markService  string
	markCommit   string
)

func init() {
	cmdMark.Flags().StringVar(&markGitURL, "git-url", "", "repository holding the service's deploy ledger")
	cmdMark.Flags().StringVar(&markCluster, "cluster", "", "cluster to mark")
	cmdMark.Flags().StringVar(&markInstance, "instance", "", "instance to mark")
	cmdMark.Flags().StringVarP(&markService, "service", "s", "", "service to mark")
	cmdMark.Flags().StringVar(&markCommit, "commit", "", "commit to mark for deployment")
	cmdMark.MarkFlagRequired("git-url")
	cmdMark.MarkFlagRequired("cluster")
	cmdMark.MarkFlagRequired("instance")
	cmdMark.MarkFlagRequired("service")
	cmdMark.MarkFlagRequired("commit")

	rootCmd.AddCommand(cmdMark)
}

var cmdMark = &cobra.Command{
	Use:   "mark-for-deployment",
	Short: "mark a commit for deployment to one cluster.instance",
	Long: `force-push a state tag telling the given cluster.instance of a
service to run the given commit; the change takes effect on the next
resolution pass`,
	Run: func(cmd *cobra.Command, args []string) {
		err := deploy.MarkForDeployment(deploy.GitPusher{}, markGitURL, markCluster, markInstance,
			markService, markCommit, deploy.NowForceBounce(time.Now()))
		if err != nil {
			glog.Errorf("mark %v.%v of %v: %v", markCluster, markInstance, markService, err)
			os.Exit(1)
		}
	},
}
