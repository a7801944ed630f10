package ports

import "overlay-config/internal/types"

// ScannerPort enumerates candidate overlay packages under a partition's
// overlay directory. One pass per call; a missing overlay directory
// yields zero descriptors, not an error.
type ScannerPort interface {
	ScanPartition(partition types.Partition) ([]types.OverlayManifest, error)
}
