// Package resolver computes the desired deployment state of a service's
// deploy groups from a snapshot of its remote refs.
package resolver

import (
	"sort"

	"github.com/golang/glog"

	"we.com/marlin/soa"
	"we.com/marlin/types"
)

// DeployGroupMappings resolves one DeployGroupMapping per deploy group of
// service, keyed service:deployGroup.
//
// The resolution is a full recompute from the snapshot, never an
// incremental patch of a prior manifest. A deploy group whose branch has no
// tip yet is skipped; that is the normal state of a brand-new group, not an
// error.
func DeployGroupMappings(service string, configs []soa.InstanceConfig, refs types.RefSnapshot) types.Manifest {
	// control branch -> deploy group; instances sharing a branch are
	// expected to agree on the group, the last one wins
	groups := map[string]string{}
	for _, c := range configs {
		groups[c.ControlBranch()] = c.TargetDeployGroup()
	}

	m := types.NewManifest()
	if len(groups) == 0 {
		glog.Infof("resolver: service %v has no valid deploy groups, skipping", service)
		return m
	}

	branches := make([]string, 0, len(groups))
	for branch := range groups {
		branches = append(branches, branch)
	}
	sort.Strings(branches)

	for _, branch := range branches {
		group := groups[branch]
		sha, ok := refs.Head(group)
		if !ok {
			glog.V(2).Infof("resolver: deploy group %v of %v has no tip commit yet", group, service)
			continue
		}

		image := types.BuildDockerImage(service, sha)
		state, forceBounce := DesiredStateFor(branch, sha, refs)

		key := types.MakeDeployGroupKey(service, group)
		glog.Infof("resolver: mapping deploy group %v to docker image %v", key, image)
		m.Mappings[key] = types.DeployGroupMapping{
			DockerImage:  image,
			DesiredState: state,
			ForceBounce:  forceBounce,
		}
	}

	return m
}

// DesiredStateFor scans every ref co-located with headSHA for state tags
// addressed to branch. With no candidate the group defaults to running:
// absence of an instruction means keep going.
//
// With several candidates the one with the greatest forceBounce token wins.
// That is a plain string comparison, not a numeric one ("42" sorts below
// "5"); operators are expected to use tokens that also sort correctly as
// strings, e.g. fixed-width timestamps.
func DesiredStateFor(branch, headSHA string, refs types.RefSnapshot) (types.DesiredState, *string) {
	type candidate struct {
		state       types.DesiredState
		forceBounce string
	}

	var states []candidate
	for ref, sha := range refs {
		if sha != headSHA {
			continue
		}
		state, forceBounce, ok := types.DecodeStateTag(ref, branch)
		if !ok {
			continue
		}
		states = append(states, candidate{state: state, forceBounce: forceBounce})
	}

	if len(states) == 0 {
		return types.StateStart, nil
	}

	sort.Slice(states, func(i, j int) bool {
		if states[i].forceBounce != states[j].forceBounce {
			return states[i].forceBounce < states[j].forceBounce
		}
		return states[i].state < states[j].state
	})

	last := states[len(states)-1]
	return last.state, &last.forceBounce
}
