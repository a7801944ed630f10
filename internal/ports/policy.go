package ports

import "overlay-config/internal/types"

// PolicySourcePort reads a partition's declared overlay policy file and
// returns the per-package fragments it contains. A missing policy file
// yields an empty policy, not an error; a malformed single entry is
// skipped rather than failing the partition.
type PolicySourcePort interface {
	PartitionPolicy(partition types.Partition) (types.PartitionPolicy, error)
}
