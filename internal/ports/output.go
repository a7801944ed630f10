package ports

import "overlay-config/internal/types"

// OutputPort emits the resolved configuration table for tooling.
type OutputPort interface {
	WriteConfigList(entries []types.Configuration) error
	WriteConfigYAML(partitionOrder string, entries []types.Configuration) error
}
