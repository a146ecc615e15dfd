package deploy

import (
	"we.com/marlin/remotegit"
)

// Pusher writes ledger tags to a service repository. The mutation paths
// take it as an argument so batch callers and tests can intercept pushes.
type Pusher interface {
	CreateRemoteTag(url, ref, sha string) error
}

// GitPusher pushes through remotegit
type GitPusher struct{}

// CreateRemoteTag implements Pusher
func (GitPusher) CreateRemoteTag(url, ref, sha string) error {
	return remotegit.CreateRemoteTag(url, ref, sha)
}
