package app

import "overlay-config/internal/types"

type ResolveRequest struct {
	RootDir   string
	OutputDir string
	Format    types.OutputFormat
}

type ResolveResult struct {
	PartitionOrder   string
	OverrideAccepted bool
	Configurations   []types.Configuration
	OutputDir        string
}

type OrderRequest struct {
	RootDir string
}

type OrderResult struct {
	PartitionOrder   string
	OverrideAccepted bool
}
