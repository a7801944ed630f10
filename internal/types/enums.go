package types

// PartitionName identifies one of the known filesystem layers that may
// contribute overlay packages. The set is closed: names outside this
// enumeration are rejected during partition-order validation.
type PartitionName string

const (
	PartitionSystem    PartitionName = "system"
	PartitionVendor    PartitionName = "vendor"
	PartitionOdm       PartitionName = "odm"
	PartitionOem       PartitionName = "oem"
	PartitionProduct   PartitionName = "product"
	PartitionSystemExt PartitionName = "system_ext"
)

// KnownPartitionNames returns a fresh slice of every known partition
// name in the compiled-in default precedence order.
func KnownPartitionNames() []PartitionName {
	return []PartitionName{
		PartitionSystem,
		PartitionVendor,
		PartitionOdm,
		PartitionOem,
		PartitionProduct,
		PartitionSystemExt,
	}
}

// ParsePartitionName maps a raw string to a known partition name.
// Returns false for anything outside the closed set.
func ParsePartitionName(value string) (PartitionName, bool) {
	switch PartitionName(value) {
	case PartitionSystem, PartitionVendor, PartitionOdm,
		PartitionOem, PartitionProduct, PartitionSystemExt:
		return PartitionName(value), true
	default:
		return "", false
	}
}

type OutputFormat string

const (
	OutputFormatList OutputFormat = "list"
	OutputFormatYAML OutputFormat = "yaml"
)
