package types

import (
	"fmt"
)

/*
	a service's desired deployment state is kept in git:

	- each deploy group is a branch, its tip commit is the artifact
	  considered current for that group
	- deployment and rollback intent travels as force-pushed state tags
	  addressed to a control branch named cluster.instance

	the resolved state of all deploy groups of a service is persisted as
	a manifest (deployments.json) in the service's config directory
*/

// DesiredState says whether a deploy group should be running.
type DesiredState string

const (
	// StateStart the deploy group should be running
	StateStart DesiredState = "start"
	// StateStop the deploy group should be stopped
	StateStop DesiredState = "stop"
)

// DeployGroupKey identifies one mapping within a manifest,
// of the form service:deployGroup
type DeployGroupKey string

// MakeDeployGroupKey builds the manifest key for a service's deploy group
func MakeDeployGroupKey(service, deployGroup string) DeployGroupKey {
	return DeployGroupKey(fmt.Sprintf("%v:%v", service, deployGroup))
}

// DeployGroupMapping is the resolved desired state of one deploy group
type DeployGroupMapping struct {
	DockerImage string `json:"docker_image"`

	DesiredState DesiredState `json:"desired_state"`

	// ForceBounce is an opaque change-detection token, nil when no state
	// tag addressed the group; never interpreted, only compared
	ForceBounce *string `json:"force_bounce"`
}

// RefSnapshot maps full ref names (refs/heads/*, refs/tags/*) to the
// commit each points at; taken as one atomic read of a remote
type RefSnapshot map[string]string

// Head returns the tip commit of branch, false if the branch is unknown
func (rs RefSnapshot) Head(branch string) (string, bool) {
	sha, ok := rs[fmt.Sprintf("refs/heads/%v", branch)]
	return sha, ok
}
