package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"overlay-config/internal/adapters"
	"overlay-config/internal/core"
	"overlay-config/internal/types"
)

func (s *Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	rootDir := strings.TrimSpace(req.RootDir)
	if rootDir == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("overlay root directory is required")
	}

	result, err := s.resolver().Resolve(ctx, rootDir)
	if err != nil {
		return ResolveResult{}, err
	}

	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir != "" {
		output := adapters.NewOutputFileAdapter(outputDir)
		switch req.Format {
		case types.OutputFormatYAML:
			err = output.WriteConfigYAML(result.PartitionOrder(), result.Configurations())
		case types.OutputFormatList, "":
			err = output.WriteConfigList(result.Configurations())
		default:
			err = errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("unsupported output format")
		}
		if err != nil {
			return ResolveResult{}, err
		}
	}

	log.Ctx(ctx).Info().
		Str("order", result.PartitionOrder()).
		Int("overlays", len(result.Configurations())).
		Msg("overlay configuration resolved")

	return ResolveResult{
		PartitionOrder:   result.PartitionOrder(),
		OverrideAccepted: result.OverrideAccepted(),
		Configurations:   result.Configurations(),
		OutputDir:        outputDir,
	}, nil
}

func (s *Service) Order(ctx context.Context, req OrderRequest) (OrderResult, error) {
	rootDir := strings.TrimSpace(req.RootDir)
	if rootDir == "" {
		return OrderResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("overlay root directory is required")
	}

	defaultOrder := core.OrderedPartitions(rootDir)
	order, accepted := core.ResolveOrder(filepath.Join(rootDir, core.PartitionOrderFilePath), defaultOrder)
	log.Ctx(ctx).Debug().
		Bool("override", accepted).
		Str("order", core.PartitionOrderString(order)).
		Msg("partition order computed")

	return OrderResult{
		PartitionOrder:   core.PartitionOrderString(order),
		OverrideAccepted: accepted,
	}, nil
}
