package cmd

import (
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"we.com/marlin/registry/deployments"
	"we.com/marlin/remotegit"
	"we.com/marlin/resolver"
	"we.com/marlin/soa"
)

var (
	generateSoaDir  string
	generateService string
)

func init() {
	cmdGenerate.Flags().StringVarP(&generateSoaDir, "soa-dir", "d", "/etc/marlin/soa", "SOA configuration directory to read from")
	cmdGenerate.Flags().StringVarP(&generateService, "service", "s", "", "service to resolve the manifest for")
	cmdGenerate.MarkFlagRequired("service")

	rootCmd.AddCommand(cmdGenerate)
}

var cmdGenerate = &cobra.Command{
	Use:   "generate",
	Short: "resolve and persist the desired deployment state of a service",
	Long: `resolve the desired deployment state of every deploy group of a
service from its remote refs, and persist it as the service's manifest`,
	Run: func(cmd *cobra.Command, args []string) {
		prov := &soa.DirProvider{Root: generateSoaDir}
		store := deployments.NewStore(generateSoaDir)

		configs, err := prov.InstanceConfigs(generateService)
		if err != nil {
			glog.Errorf("load instance configs of %v: %v", generateService, err)
			os.Exit(1)
		}

		// the prior manifest is loaded tolerantly (legacy shapes,
		// corruption, absence) but resolution is a full recompute
		old := store.Load(generateService)
		glog.V(2).Infof("prior manifest of %v has %v mappings", generateService, len(old.Mappings))

		url, err := prov.GitURL(generateService)
		if err != nil {
			glog.Errorf("git url of %v: %v", generateService, err)
			os.Exit(1)
		}

		refs, err := remotegit.ListRemoteRefs(url)
		if err != nil {
			// a failed snapshot aborts the pass, no partial manifest
			glog.Errorf("list remote refs of %v: %v", generateService, err)
			os.Exit(1)
		}

		m := resolver.DeployGroupMappings(generateService, configs, refs)
		if err := store.Save(generateService, m); err != nil {
			glog.Errorf("save manifest of %v: %v", generateService, err)
			os.Exit(1)
		}
	},
}
