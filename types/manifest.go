package types

import (
	"encoding/json"
)

// Manifest is the per-service deployments document. On disk it is wrapped
// in a versioned envelope:
//
//	{"v1": {"service:group": {"docker_image": ..., "desired_state": ..., "force_bounce": ...}}}
//
// pre-v1 documents are a flat map of deploy group to a plain image string;
// those are migrated on read to start mappings with no force bounce.
type Manifest struct {
	Mappings map[DeployGroupKey]DeployGroupMapping
}

// NewManifest returns an empty manifest
func NewManifest() Manifest {
	return Manifest{Mappings: map[DeployGroupKey]DeployGroupMapping{}}
}

// MarshalJSON json.Marshaler, always writes the v1 envelope
func (m Manifest) MarshalJSON() ([]byte, error) {
	mappings := m.Mappings
	if mappings == nil {
		mappings = map[DeployGroupKey]DeployGroupMapping{}
	}

	return json.Marshal(map[string]map[DeployGroupKey]DeployGroupMapping{
		"v1": mappings,
	})
}

// UnmarshalJSON json.Unmarshaler; detects the document shape by presence of
// the v1 key, a legacy flat document is never an error
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if raw, ok := doc["v1"]; ok {
		mappings := map[DeployGroupKey]DeployGroupMapping{}
		if err := json.Unmarshal(raw, &mappings); err != nil {
			return err
		}
		m.Mappings = mappings
		return nil
	}

	mappings := make(map[DeployGroupKey]DeployGroupMapping, len(doc))
	for key, raw := range doc {
		var image string
		if err := json.Unmarshal(raw, &image); err != nil {
			// legacy entries are plain image strings, skip anything else
			continue
		}
		mappings[DeployGroupKey(key)] = DeployGroupMapping{
			DockerImage:  image,
			DesiredState: StateStart,
		}
	}
	m.Mappings = mappings
	return nil
}
