package soa

import (
	"fmt"
)

// InstanceConfig is one (service, cluster, instance) configuration entry.
// It is the uniform view over whatever scheduler-specific shape the entry
// was loaded from: callers only ever need the control branch and the
// target deploy group.
type InstanceConfig struct {
	Service  string
	Cluster  string
	Instance string

	// Branch overrides the control branch, empty means cluster.instance
	Branch string
	// DeployGroup overrides the target deploy group, empty means the
	// control branch
	DeployGroup string
}

// ControlBranch is the branch name state tags for this instance are
// addressed to
func (c InstanceConfig) ControlBranch() string {
	if c.Branch != "" {
		return c.Branch
	}
	return fmt.Sprintf("%v.%v", c.Cluster, c.Instance)
}

// TargetDeployGroup is the branch whose tip commit is the deployable
// artifact for this instance
func (c InstanceConfig) TargetDeployGroup() string {
	if c.DeployGroup != "" {
		return c.DeployGroup
	}
	return c.ControlBranch()
}

// Provider exposes the per-service configuration the resolution and
// mutation paths consume. Loading and parsing the underlying config files
// is not this module's concern, only this boundary is.
type Provider interface {
	// GitURL returns the repository holding the service's deploy ledger
	GitURL(service string) (string, error)

	// ListClusters lists the clusters the service is configured in
	ListClusters(service string) ([]string, error)

	// ListInstances lists all instance names of the service across clusters
	ListInstances(service string) ([]string, error)

	// InstanceConfigs returns every (cluster, instance) entry of the service
	InstanceConfigs(service string) ([]InstanceConfig, error)
}
