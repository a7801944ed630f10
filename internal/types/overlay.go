package types

import "path/filepath"

// Partition is an immutable value object describing one filesystem
// layer under the resolver's root directory.
type Partition struct {
	Name PartitionName
	Path string
}

// NewPartition builds a partition rooted under rootDir using the
// partition name as its mount directory.
func NewPartition(name PartitionName, rootDir string) Partition {
	return Partition{Name: name, Path: filepath.Join(rootDir, string(name))}
}

// OverlayDir is the directory scanned for overlay packages.
func (p Partition) OverlayDir() string {
	return filepath.Join(p.Path, "overlay")
}

// PolicyFile is the partition-level overlay policy declaration.
func (p Partition) PolicyFile() string {
	return filepath.Join(p.Path, "overlay", "config", "config.xml")
}

// OverlayManifest is a raw overlay package descriptor produced by the
// partition scanner from a package's manifest file.
type OverlayManifest struct {
	PackageName   string
	TargetPackage string
	Priority      int
	Static        bool
	Path          string
	Partition     PartitionName
}

// PolicyFragment is one package's declared policy as read from a
// partition's configuration source.
type PolicyFragment struct {
	PackageName string
	Enabled     bool
	Mutable     bool
	Partition   PartitionName
}

// PartitionPolicy groups the fragments a single partition declares.
type PartitionPolicy struct {
	Partition PartitionName
	Fragments []PolicyFragment
}

// Configuration is the final resolved policy record for one overlay
// package. ConfigIndex is the zero-based position of the owning
// partition within the effective partition order; packages from the
// same partition share the same index.
type Configuration struct {
	PackageName string
	Enabled     bool
	Mutable     bool
	ConfigIndex int
	Partition   PartitionName
}
