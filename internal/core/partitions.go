package core

import (
	"strings"

	"overlay-config/internal/types"
)

// PartitionOrderFilePath is the override file location relative to the
// resolver's root directory. Only the product partition may reorder
// partitions.
const PartitionOrderFilePath = "product/overlay/partition_order.xml"

// OrderedPartitions returns a fresh slice of every known partition in
// the compiled-in default precedence order, rooted under rootDir.
// Callers own the returned slice.
func OrderedPartitions(rootDir string) []types.Partition {
	names := types.KnownPartitionNames()
	partitions := make([]types.Partition, 0, len(names))
	for _, name := range names {
		partitions = append(partitions, types.NewPartition(name, rootDir))
	}
	return partitions
}

// PartitionOrderString renders a partition sequence as comma-joined
// names, e.g. "system, vendor, odm, oem, product, system_ext". Used
// for diagnostics and by callers comparing effective orders.
func PartitionOrderString(partitions []types.Partition) string {
	names := make([]string, 0, len(partitions))
	for _, partition := range partitions {
		names = append(names, string(partition.Name))
	}
	return strings.Join(names, ", ")
}
