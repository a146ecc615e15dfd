// Package deployments persists per-service manifests under an SOA
// configuration root, one deployments.json per service directory.
package deployments

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"we.com/marlin/types"
)

// TargetFile is the manifest file name inside a service directory
const TargetFile = "deployments.json"

// Store reads and writes manifests below Root
type Store struct {
	root string
}

// NewStore returns a store rooted at the given SOA configuration directory
func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) path(service string) string {
	return filepath.Join(s.root, service, TargetFile)
}

// Load returns the persisted manifest of service. A missing or unreadable
// document yields an empty manifest, never an error: resolution must be
// able to run with no prior state at all.
func (s *Store) Load(service string) types.Manifest {
	path := s.path(service)

	dat, err := ioutil.ReadFile(path)
	if err != nil {
		glog.V(2).Infof("deployments: no prior manifest at %v: %v", path, err)
		return types.NewManifest()
	}

	var m types.Manifest
	if err := json.Unmarshal(dat, &m); err != nil {
		glog.Warningf("deployments: discarding unreadable manifest %v: %v", path, err)
		return types.NewManifest()
	}
	return m
}

// Save persists the manifest of service atomically: the document is written
// to a sibling temp file and renamed over the target, so a reader never
// observes a truncated manifest and a crash mid-write keeps the old one.
func (s *Store) Save(service string, m types.Manifest) error {
	target := s.path(service)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrap(err, "deployments: ensure service dir")
	}

	dat, err := json.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "deployments: encode manifest")
	}

	f, err := ioutil.TempFile(filepath.Dir(target), TargetFile+".")
	if err != nil {
		return errors.Wrap(err, "deployments: create temp file")
	}
	tmp := f.Name()

	if _, err := f.Write(dat); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(err, "deployments: write manifest")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "deployments: close temp file")
	}

	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "deployments: replace manifest")
	}

	glog.V(2).Infof("deployments: wrote %v mappings to %v", len(m.Mappings), target)
	return nil
}
