package core

import (
	"encoding/xml"
	"os"

	"github.com/rs/zerolog/log"

	"overlay-config/internal/types"
)

// partitionOrderRoot is the only accepted root element of the override
// file. Any other root tag rejects the whole document.
const partitionOrderRoot = "partition-order"

type partitionOrderDoc struct {
	XMLName    xml.Name
	Partitions []partitionOrderEntry `xml:"partition"`
}

type partitionOrderEntry struct {
	Name string `xml:"name,attr"`
}

// ResolveOrder validates the partition-order override file at path
// against defaultOrder. On success it returns a fresh slice holding
// defaultOrder's partitions in the exact order listed in the file and
// true. On any rejection (file absent or unreadable, wrong root
// element, unknown name, duplicate, missing partition) it returns
// defaultOrder unmodified and false. Rejection is fail-closed and
// never propagates an error: an ambiguous ordering keeps the
// compiled-in default.
func ResolveOrder(path string, defaultOrder []types.Partition) ([]types.Partition, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Str("path", path).Msg("partition order file not readable, keeping default order")
		return defaultOrder, false
	}

	var doc partitionOrderDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		log.Debug().Str("path", path).Err(err).Msg("partition order file rejected: malformed xml")
		return defaultOrder, false
	}
	if doc.XMLName.Local != partitionOrderRoot {
		log.Debug().
			Str("path", path).
			Str("root", doc.XMLName.Local).
			Msg("partition order file rejected: unexpected root element")
		return defaultOrder, false
	}

	byName := make(map[types.PartitionName]types.Partition, len(defaultOrder))
	for _, partition := range defaultOrder {
		byName[partition.Name] = partition
	}

	seen := make(map[types.PartitionName]struct{}, len(defaultOrder))
	ordered := make([]types.Partition, 0, len(defaultOrder))
	for _, entry := range doc.Partitions {
		name, ok := types.ParsePartitionName(entry.Name)
		if !ok {
			log.Debug().Str("path", path).Str("name", entry.Name).Msg("partition order file rejected: unknown partition")
			return defaultOrder, false
		}
		partition, ok := byName[name]
		if !ok {
			log.Debug().Str("path", path).Str("name", entry.Name).Msg("partition order file rejected: partition not in current order")
			return defaultOrder, false
		}
		if _, dup := seen[name]; dup {
			log.Debug().Str("path", path).Str("name", entry.Name).Msg("partition order file rejected: duplicate partition")
			return defaultOrder, false
		}
		seen[name] = struct{}{}
		ordered = append(ordered, partition)
	}
	if len(ordered) != len(defaultOrder) {
		log.Debug().
			Str("path", path).
			Int("listed", len(ordered)).
			Int("known", len(defaultOrder)).
			Msg("partition order file rejected: incomplete partition set")
		return defaultOrder, false
	}
	return ordered, true
}

// SortPartitions applies the override file at path to the caller-owned
// partitions slice, reordering it in place only when the file is
// accepted. On rejection the slice is left exactly as supplied. This
// is the in-place compatibility surface; new callers should prefer
// ResolveOrder, which returns a fresh sequence.
func SortPartitions(path string, partitions []types.Partition) bool {
	ordered, accepted := ResolveOrder(path, partitions)
	if !accepted {
		return false
	}
	copy(partitions, ordered)
	return true
}
