package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"overlay-config/internal/ports"
	"overlay-config/internal/types"
)

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

func (a OutputFileAdapter) WriteConfigList(entries []types.Configuration) error {
	path, err := a.ensurePath("overlay_config.list")
	if err != nil {
		return err
	}
	ordered := sortedConfigurations(entries)
	var lines []string
	for _, entry := range ordered {
		lines = append(lines, fmt.Sprintf("%s enabled=%t mutable=%t index=%d partition=%s",
			entry.PackageName, entry.Enabled, entry.Mutable, entry.ConfigIndex, entry.Partition))
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

type configYAML struct {
	PartitionOrder string            `yaml:"partition_order"`
	Overlays       []configYAMLEntry `yaml:"overlays"`
}

type configYAMLEntry struct {
	Package   string `yaml:"package"`
	Partition string `yaml:"partition"`
	Enabled   bool   `yaml:"enabled"`
	Mutable   bool   `yaml:"mutable"`
	Index     int    `yaml:"index"`
}

func (a OutputFileAdapter) WriteConfigYAML(partitionOrder string, entries []types.Configuration) error {
	path, err := a.ensurePath("overlay_config.yaml")
	if err != nil {
		return err
	}
	doc := configYAML{PartitionOrder: partitionOrder}
	for _, entry := range sortedConfigurations(entries) {
		doc.Overlays = append(doc.Overlays, configYAMLEntry{
			Package:   entry.PackageName,
			Partition: string(entry.Partition),
			Enabled:   entry.Enabled,
			Mutable:   entry.Mutable,
			Index:     entry.ConfigIndex,
		})
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal overlay config").
			WithCause(err)
	}
	return os.WriteFile(path, data, 0644)
}

func sortedConfigurations(entries []types.Configuration) []types.Configuration {
	ordered := append([]types.Configuration(nil), entries...)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].ConfigIndex != ordered[j].ConfigIndex {
			return ordered[i].ConfigIndex < ordered[j].ConfigIndex
		}
		return ordered[i].PackageName < ordered[j].PackageName
	})
	return ordered
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

var _ ports.OutputPort = OutputFileAdapter{}
