package adapters

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"overlay-config/internal/ports"
	"overlay-config/internal/types"
)

// OverlayScannerAdapter discovers overlay packages by walking a
// partition's overlay directory for manifest.xml files. The config
// subdirectory holds partition policy, not packages, and is skipped.
type OverlayScannerAdapter struct{}

func NewOverlayScannerAdapter() OverlayScannerAdapter {
	return OverlayScannerAdapter{}
}

func (a OverlayScannerAdapter) ScanPartition(partition types.Partition) ([]types.OverlayManifest, error) {
	overlayDir := partition.OverlayDir()
	if _, err := os.Stat(overlayDir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to access partition overlay directory").
			WithCause(err)
	}

	var manifests []types.OverlayManifest
	err := filepath.WalkDir(overlayDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != overlayDir && d.Name() == "config" && filepath.Dir(path) == overlayDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Base(path) != "manifest.xml" {
			return nil
		}
		manifest, isOverlay, parseErr := parseOverlayManifest(path, partition.Name)
		if parseErr != nil {
			log.Warn().
				Str("partition", string(partition.Name)).
				Str("path", path).
				Err(parseErr).
				Msg("skipping malformed overlay manifest")
			return nil
		}
		if !isOverlay {
			return nil
		}
		manifests = append(manifests, manifest)
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan partition overlays").
			WithCause(err)
	}
	return manifests, nil
}

var _ ports.ScannerPort = OverlayScannerAdapter{}
