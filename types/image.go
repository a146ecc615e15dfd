package types

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

var (
	// image names are services-<service>:paasta-<sha>, possibly behind a
	// registry prefix; the lazy group keeps a greedy registry from
	// swallowing the service name
	serviceFromImage = regexp.MustCompile(`^(?:.*/)?services-(.*?):paasta-`)
)

// BuildDockerImage derives the image name for a service at a commit
func BuildDockerImage(service, sha string) string {
	return fmt.Sprintf("services-%v:paasta-%v", service, sha)
}

// ServiceFromDockerImage is the inverse of BuildDockerImage: it extracts
// the service name from an image name, with or without a registry prefix
func ServiceFromDockerImage(image string) (string, error) {
	part := serviceFromImage.FindStringSubmatch(image)
	if len(part) != 2 {
		return "", errors.Errorf("not a service image name: %v", image)
	}
	return part[1], nil
}
