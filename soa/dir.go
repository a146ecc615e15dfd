package soa

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	deployFileName = "deploy.yaml"

	defaultRepoBase = "git@repo.we.com"
)

// DirProvider reads service configuration from a directory tree of the form
//
//	<root>/<service>/deploy.yaml
//
// with one document per service:
//
//	git_url: git@repo.we.com:services/crm-server.git
//	clusters:
//	  clusterA:
//	    main:
//	      deploy_group: prod
//	    canary:
//	      branch: clusterA.main
type DirProvider struct {
	Root string
}

type instanceSpec struct {
	DeployGroup string `yaml:"deploy_group,omitempty"`
	Branch      string `yaml:"branch,omitempty"`
}

type deployFile struct {
	GitURL   string                             `yaml:"git_url,omitempty"`
	Clusters map[string]map[string]instanceSpec `yaml:"clusters,omitempty"`
}

func (p *DirProvider) load(service string) (*deployFile, error) {
	path := filepath.Join(p.Root, service, deployFileName)
	dat, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "soa: read service config")
	}

	df := deployFile{}
	if err := yaml.Unmarshal(dat, &df); err != nil {
		return nil, errors.Wrapf(err, "soa: decode %v", path)
	}
	return &df, nil
}

// GitURL implements Provider; an unset git_url falls back to the
// conventional services repository location
func (p *DirProvider) GitURL(service string) (string, error) {
	df, err := p.load(service)
	if err != nil {
		return "", err
	}

	if df.GitURL != "" {
		return df.GitURL, nil
	}
	return fmt.Sprintf("%v:services/%v.git", defaultRepoBase, service), nil
}

// ListClusters implements Provider
func (p *DirProvider) ListClusters(service string) ([]string, error) {
	df, err := p.load(service)
	if err != nil {
		return nil, err
	}

	ret := make([]string, 0, len(df.Clusters))
	for cluster := range df.Clusters {
		ret = append(ret, cluster)
	}
	sort.Strings(ret)
	return ret, nil
}

// ListInstances implements Provider; an instance configured in several
// clusters is listed once
func (p *DirProvider) ListInstances(service string) ([]string, error) {
	df, err := p.load(service)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	ret := []string{}
	for _, instances := range df.Clusters {
		for instance := range instances {
			if _, ok := seen[instance]; ok {
				continue
			}
			seen[instance] = struct{}{}
			ret = append(ret, instance)
		}
	}
	sort.Strings(ret)
	return ret, nil
}

// InstanceConfigs implements Provider
func (p *DirProvider) InstanceConfigs(service string) ([]InstanceConfig, error) {
	df, err := p.load(service)
	if err != nil {
		return nil, err
	}

	ret := []InstanceConfig{}
	for cluster, instances := range df.Clusters {
		for instance, spec := range instances {
			ret = append(ret, InstanceConfig{
				Service:     service,
				Cluster:     cluster,
				Instance:    instance,
				Branch:      spec.Branch,
				DeployGroup: spec.DeployGroup,
			})
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Cluster != ret[j].Cluster {
			return ret[i].Cluster < ret[j].Cluster
		}
		return ret[i].Instance < ret[j].Instance
	})
	return ret, nil
}
