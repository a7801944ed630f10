package adapters

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"overlay-config/internal/ports"
	"overlay-config/internal/types"
)

// maxConfigMergeDepth bounds <merge> include chains so a cycle cannot
// recurse forever.
const maxConfigMergeDepth = 5

const overlayConfigRoot = "config"

// OverlayConfigXMLAdapter parses partition-level config.xml policy
// files. Every anomaly below a whole-file read is recovered locally:
// a missing file is an empty policy, a malformed entry or include is
// skipped with a warning, and the partition keeps resolving.
type OverlayConfigXMLAdapter struct {
	mu    sync.Mutex
	cache map[string]overlayConfigCacheEntry
}

func NewOverlayConfigXMLAdapter() *OverlayConfigXMLAdapter {
	return &OverlayConfigXMLAdapter{cache: map[string]overlayConfigCacheEntry{}}
}

type overlayConfigXML struct {
	XMLName xml.Name
	Merges  []overlayConfigMergeXML `xml:"merge"`
	Entries []overlayConfigEntryXML `xml:"overlay"`
}

type overlayConfigMergeXML struct {
	Path string `xml:"path,attr"`
}

type overlayConfigEntryXML struct {
	Package string `xml:"package,attr"`
	Enabled string `xml:"enabled,attr"`
	Mutable string `xml:"mutable,attr"`
}

type cachedPolicyEntry struct {
	packageName string
	enabled     bool
	mutable     bool
}

type overlayConfigCacheEntry struct {
	modTime time.Time
	entries []cachedPolicyEntry
	merges  []string
}

func (a *OverlayConfigXMLAdapter) PartitionPolicy(partition types.Partition) (types.PartitionPolicy, error) {
	policy := types.PartitionPolicy{Partition: partition.Name}
	entries := a.loadConfig(partition.PolicyFile(), 0)
	for _, entry := range entries {
		policy.Fragments = append(policy.Fragments, types.PolicyFragment{
			PackageName: entry.packageName,
			Enabled:     entry.enabled,
			Mutable:     entry.mutable,
			Partition:   partition.Name,
		})
	}
	return policy, nil
}

// loadConfig returns the flattened entries of one config file,
// included files first so local declarations override merged ones.
func (a *OverlayConfigXMLAdapter) loadConfig(path string, depth int) []cachedPolicyEntry {
	if depth > maxConfigMergeDepth {
		log.Warn().Str("path", path).Msg("overlay config merge depth exceeded, skipping include")
		return nil
	}
	cached, ok := a.loadConfigFile(path)
	if !ok {
		return nil
	}
	var entries []cachedPolicyEntry
	for _, merge := range cached.merges {
		mergePath := merge
		if !filepath.IsAbs(mergePath) {
			mergePath = filepath.Join(filepath.Dir(path), mergePath)
		}
		entries = append(entries, a.loadConfig(mergePath, depth+1)...)
	}
	entries = append(entries, cached.entries...)
	return entries
}

// loadConfigFile parses a single config file, caching by modification
// time. Returns false when the file is absent or rejected as a whole.
func (a *OverlayConfigXMLAdapter) loadConfigFile(path string) (overlayConfigCacheEntry, bool) {
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Str("path", path).Err(err).Msg("overlay config unreadable")
		}
		return overlayConfigCacheEntry{}, false
	}

	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry, true
	}
	a.mu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("overlay config unreadable")
		return overlayConfigCacheEntry{}, false
	}
	var doc overlayConfigXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("skipping malformed overlay config")
		return overlayConfigCacheEntry{}, false
	}
	if doc.XMLName.Local != overlayConfigRoot {
		log.Warn().
			Str("path", path).
			Str("root", doc.XMLName.Local).
			Msg("skipping overlay config with unexpected root element")
		return overlayConfigCacheEntry{}, false
	}

	entry := overlayConfigCacheEntry{modTime: info.ModTime()}
	for _, merge := range doc.Merges {
		mergePath := strings.TrimSpace(merge.Path)
		if mergePath == "" {
			log.Warn().Str("path", path).Msg("skipping overlay config merge without path")
			continue
		}
		entry.merges = append(entry.merges, mergePath)
	}
	for _, raw := range doc.Entries {
		packageName := strings.TrimSpace(raw.Package)
		if packageName == "" {
			log.Warn().Str("path", path).Msg("skipping overlay config entry without package")
			continue
		}
		enabled, err := parseBoolAttr(raw.Enabled, false)
		if err != nil {
			log.Warn().Str("path", path).Str("package", packageName).Msg("skipping overlay config entry with bad enabled attribute")
			continue
		}
		mutable, err := parseBoolAttr(raw.Mutable, true)
		if err != nil {
			log.Warn().Str("path", path).Str("package", packageName).Msg("skipping overlay config entry with bad mutable attribute")
			continue
		}
		entry.entries = append(entry.entries, cachedPolicyEntry{
			packageName: packageName,
			enabled:     enabled,
			mutable:     mutable,
		})
	}

	a.mu.Lock()
	a.cache[path] = entry
	a.mu.Unlock()
	return entry, true
}

func parseBoolAttr(value string, fallback bool) (bool, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	return strconv.ParseBool(trimmed)
}

var _ ports.PolicySourcePort = (*OverlayConfigXMLAdapter)(nil)
