package deploy

import (
	"fmt"
	"sort"
	"strings"
	"time"

	multierror "github.com/hashicorp/go-multierror"

	"we.com/marlin/soa"
)

// ValidateInstances partitions given into the subset known to the service
// and the rest. An empty given list means every known instance; duplicates
// collapse, these are sets.
func ValidateInstances(known, given []string) (valid, invalid map[string]struct{}) {
	valid = map[string]struct{}{}
	invalid = map[string]struct{}{}

	if len(given) == 0 {
		for _, inst := range known {
			valid[inst] = struct{}{}
		}
		return valid, invalid
	}

	ks := make(map[string]struct{}, len(known))
	for _, inst := range known {
		ks[inst] = struct{}{}
	}
	for _, inst := range given {
		if _, ok := ks[inst]; ok {
			valid[inst] = struct{}{}
		} else {
			invalid[inst] = struct{}{}
		}
	}
	return valid, invalid
}

// Rollback marks every requested instance of service in cluster for
// deployment of sha. The request is validated as a whole first: an unknown
// cluster or any invalid instance rejects the batch before a single tag is
// pushed. Individual push failures do not stop the remaining instances;
// they are aggregated into the returned error.
func Rollback(p Pusher, prov soa.Provider, service, cluster string, instances []string, sha string) error {
	clusters, err := prov.ListClusters(service)
	if err != nil {
		return err
	}
	if !containsString(clusters, cluster) {
		return &terror{code: unknownCluster, msg: fmt.Sprintf("%v of %v", cluster, service)}
	}

	known, err := prov.ListInstances(service)
	if err != nil {
		return err
	}

	valid, invalid := ValidateInstances(known, instances)
	if len(invalid) > 0 {
		return &terror{code: invalidInstance, msg: strings.Join(setToSlice(invalid), ", ")}
	}

	url, err := prov.GitURL(service)
	if err != nil {
		return err
	}

	forceBounce := NowForceBounce(time.Now())
	var result *multierror.Error
	for _, instance := range setToSlice(valid) {
		if err := MarkForDeployment(p, url, cluster, instance, service, sha, forceBounce); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func setToSlice(set map[string]struct{}) []string {
	ret := make([]string, 0, len(set))
	for s := range set {
		ret = append(ret, s)
	}
	sort.Strings(ret)
	return ret
}
