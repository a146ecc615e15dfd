package remotegit

import (
	"fmt"

	"github.com/golang/glog"
	git "gopkg.in/src-d/go-git.v4"
	"gopkg.in/src-d/go-git.v4/config"
	"gopkg.in/src-d/go-git.v4/plumbing"
	"gopkg.in/src-d/go-git.v4/storage/memory"

	"we.com/marlin/types"
)

// ListRemoteRefs takes a snapshot of every ref the repository at url
// advertises, in a single round trip. There is no caching: a stale snapshot
// directly causes wrong deploy decisions, so every resolution pass pays for
// a fresh one.
func ListRemoteRefs(url string) (types.RefSnapshot, error) {
	rem := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{url},
	})

	refs, err := rem.List(&git.ListOptions{})
	if err != nil {
		return nil, &terror{code: refFetch, msg: url, cause: err}
	}

	snap := make(types.RefSnapshot, len(refs))
	for _, ref := range refs {
		// HEAD and friends are symbolic, the snapshot only carries
		// hash-valued refs
		if ref.Type() != plumbing.HashReference {
			continue
		}
		snap[ref.Name().String()] = ref.Hash().String()
	}

	glog.V(3).Infof("remotegit: %v advertises %v refs", url, len(snap))
	return snap, nil
}

// CreateRemoteTag force-pushes ref so that it points at sha on the
// repository at url. The commit must already exist on the remote; the local
// side is an in-memory clone used only to negotiate the push.
func CreateRemoteTag(url, ref, sha string) error {
	r, err := git.Clone(memory.NewStorage(), nil, &git.CloneOptions{
		URL: url,
	})
	if err != nil {
		return &terror{code: pushRejected, msg: url, cause: err}
	}

	name := plumbing.ReferenceName(ref)
	if err := r.Storer.SetReference(plumbing.NewHashReference(name, plumbing.NewHash(sha))); err != nil {
		return &terror{code: pushRejected, msg: ref, cause: err}
	}

	spec := config.RefSpec(fmt.Sprintf("+%v:%v", ref, ref))
	err = r.Push(&git.PushOptions{
		RemoteName: git.DefaultRemoteName,
		RefSpecs:   []config.RefSpec{spec},
	})
	if err == git.NoErrAlreadyUpToDate {
		err = nil
	}
	if err != nil {
		return &terror{code: pushRejected, msg: fmt.Sprintf("%v on %v", ref, url), cause: err}
	}

	glog.V(2).Infof("remotegit: pushed %v -> %v on %v", ref, sha, url)
	return nil
}
