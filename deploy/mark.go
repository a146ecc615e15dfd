// Package deploy mutates the desired deployment state of a service by
// writing ledger tags. A successful mutation only updates the ledger;
// nothing is deployed until the next resolution pass observes the tag.
package deploy

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"we.com/marlin/types"
)

// NowForceBounce formats t as the force bounce token written by mark
// operations. Fixed-width UTC timestamps sort correctly both as strings
// and in time, which is what the resolver's string-max tie-break needs.
func NowForceBounce(t time.Time) string {
	return t.UTC().Format("20060102T150405")
}

// MarkForDeployment requests that (cluster, instance) of service run the
// given commit, by force-pushing a start tag addressed to the
// cluster.instance control branch.
func MarkForDeployment(p Pusher, gitURL, cluster, instance, service, sha, forceBounce string) error {
	branch := fmt.Sprintf("%v.%v", cluster, instance)

	ref, err := types.EncodeStateTag(branch, forceBounce, types.StateStart)
	if err != nil {
		return errors.Wrap(err, "deploy: build state tag")
	}

	if err := p.CreateRemoteTag(gitURL, ref, sha); err != nil {
		glog.Errorf("deploy: mark %v for deployment of %v on %v: %v", branch, sha, service, err)
		return err
	}

	glog.Infof("deploy: marked %v of %v for deployment of %v", branch, service, sha)
	return nil
}
