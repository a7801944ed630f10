package core

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"overlay-config/internal/ports"
	"overlay-config/internal/types"
)

// Resolver computes the effective partition order and the final policy
// record for every overlay package found in the partitions. Each
// Resolve call is a one-shot computation over the on-disk state; the
// returned Result is an immutable snapshot.
type Resolver struct {
	Scanner ports.ScannerPort
	Policy  ports.PolicySourcePort
}

func NewResolver(scanner ports.ScannerPort, policy ports.PolicySourcePort) Resolver {
	return Resolver{Scanner: scanner, Policy: policy}
}

// Result is the resolved configuration table plus the partition order
// it was derived under. It is safe for concurrent readers.
type Result struct {
	order    []types.Partition
	accepted bool
	configs  map[string]types.Configuration
}

func (r Resolver) Resolve(ctx context.Context, rootDir string) (Result, error) {
	if r.Scanner == nil || r.Policy == nil {
		return Result{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires scanner and policy ports")
	}
	assert.NotEmpty(ctx, rootDir, "overlay root directory must be set")
	if _, err := os.Stat(rootDir); err != nil {
		return Result{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("overlay root directory inaccessible").
			WithCause(err)
	}

	defaultOrder := OrderedPartitions(rootDir)
	order, accepted := ResolveOrder(filepath.Join(rootDir, PartitionOrderFilePath), defaultOrder)

	// Later-processed partitions overwrite earlier ones per package,
	// including the config index: the table always reflects the last
	// partition in the effective order that mentions the package.
	configs := map[string]types.Configuration{}
	for index, partition := range order {
		for _, fragment := range r.partitionFragments(ctx, partition) {
			configs[fragment.PackageName] = types.Configuration{
				PackageName: fragment.PackageName,
				Enabled:     fragment.Enabled,
				Mutable:     fragment.Mutable,
				ConfigIndex: index,
				Partition:   partition.Name,
			}
		}
	}

	log.Ctx(ctx).Debug().
		Int("overlays", len(configs)).
		Str("order", PartitionOrderString(order)).
		Bool("override", accepted).
		Msg("overlay resolution completed")

	return Result{order: order, accepted: accepted, configs: configs}, nil
}

// partitionFragments gathers one partition's policy fragments, in a
// deterministic order: scanned packages first (declared policy applied
// where present, partition defaults otherwise), then policy entries
// for packages the scan did not surface. A failing scan or policy read
// degrades to an empty contribution; it never aborts the resolution.
func (r Resolver) partitionFragments(ctx context.Context, partition types.Partition) []types.PolicyFragment {
	manifests, err := r.Scanner.ScanPartition(partition)
	if err != nil {
		log.Ctx(ctx).Warn().
			Str("partition", string(partition.Name)).
			Err(err).
			Msg("partition scan failed, skipping partition overlays")
		manifests = nil
	}
	policy, err := r.Policy.PartitionPolicy(partition)
	if err != nil {
		log.Ctx(ctx).Warn().
			Str("partition", string(partition.Name)).
			Err(err).
			Msg("partition policy unreadable, using partition defaults")
		policy = types.PartitionPolicy{Partition: partition.Name}
	}

	declared := make(map[string]types.PolicyFragment, len(policy.Fragments))
	for _, fragment := range policy.Fragments {
		declared[fragment.PackageName] = fragment
	}

	seen := map[string]struct{}{}
	var fragments []types.PolicyFragment
	for _, manifest := range manifests {
		if _, dup := seen[manifest.PackageName]; dup {
			continue
		}
		seen[manifest.PackageName] = struct{}{}
		if fragment, ok := declared[manifest.PackageName]; ok {
			fragments = append(fragments, fragment)
			continue
		}
		// Scanned but undeclared overlays default to disabled and
		// user-mutable.
		fragments = append(fragments, types.PolicyFragment{
			PackageName: manifest.PackageName,
			Enabled:     false,
			Mutable:     true,
			Partition:   partition.Name,
		})
	}
	for _, fragment := range policy.Fragments {
		if _, dup := seen[fragment.PackageName]; dup {
			continue
		}
		seen[fragment.PackageName] = struct{}{}
		// Duplicate declarations within a partition collapse to the
		// last one, same as for scanned packages.
		fragments = append(fragments, declared[fragment.PackageName])
	}
	return fragments
}

// Configuration returns the resolved record for packageName.
func (r Result) Configuration(packageName string) (types.Configuration, bool) {
	config, ok := r.configs[packageName]
	return config, ok
}

// Configurations returns a snapshot copy of every resolved record,
// sorted by config index then package name.
func (r Result) Configurations() []types.Configuration {
	out := make([]types.Configuration, 0, len(r.configs))
	for _, config := range r.configs {
		out = append(out, config)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ConfigIndex != out[j].ConfigIndex {
			return out[i].ConfigIndex < out[j].ConfigIndex
		}
		return out[i].PackageName < out[j].PackageName
	})
	return out
}

// PartitionOrder renders the effective order as comma-joined names.
func (r Result) PartitionOrder() string {
	return PartitionOrderString(r.order)
}

// Partitions returns a copy of the effective partition order.
func (r Result) Partitions() []types.Partition {
	return append([]types.Partition(nil), r.order...)
}

// OverrideAccepted reports whether the partition-order override file
// was validated and applied, as opposed to the compiled-in default.
func (r Result) OverrideAccepted() bool {
	return r.accepted
}
