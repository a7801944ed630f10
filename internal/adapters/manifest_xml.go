package adapters

import (
	"encoding/xml"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"overlay-config/internal/types"
)

const overlayManifestRoot = "manifest"

type manifestXML struct {
	XMLName xml.Name
	Package string              `xml:"package,attr"`
	Overlay *manifestOverlayXML `xml:"overlay"`
}

type manifestOverlayXML struct {
	TargetPackage string `xml:"targetPackage,attr"`
	Priority      int    `xml:"priority,attr"`
	IsStatic      bool   `xml:"isStatic,attr"`
}

// parseOverlayManifest reads one overlay package manifest. The second
// return value is false when the manifest parses but does not declare
// an overlay, meaning the package is not an overlay candidate.
func parseOverlayManifest(path string, partition types.PartitionName) (types.OverlayManifest, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.OverlayManifest{}, false, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read overlay manifest").
			WithCause(err)
	}
	var manifest manifestXML
	if err := xml.Unmarshal(content, &manifest); err != nil {
		return types.OverlayManifest{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse overlay manifest").
			WithCause(err)
	}
	if manifest.XMLName.Local != overlayManifestRoot {
		return types.OverlayManifest{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("overlay manifest has unexpected root element")
	}
	packageName := strings.TrimSpace(manifest.Package)
	if packageName == "" {
		return types.OverlayManifest{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("overlay manifest has no package name")
	}
	if manifest.Overlay == nil {
		return types.OverlayManifest{}, false, nil
	}
	return types.OverlayManifest{
		PackageName:   packageName,
		TargetPackage: strings.TrimSpace(manifest.Overlay.TargetPackage),
		Priority:      manifest.Overlay.Priority,
		Static:        manifest.Overlay.IsStatic,
		Path:          path,
		Partition:     partition,
	}, true, nil
}
