package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overlay-config/internal/types"
)

func TestPartitionPolicyMissingFile(t *testing.T) {
	root := t.TempDir()
	partition := types.NewPartition(types.PartitionOdm, root)

	policy, err := NewOverlayConfigXMLAdapter().PartitionPolicy(partition)
	require.NoError(t, err)
	assert.Equal(t, types.PartitionOdm, policy.Partition)
	assert.Empty(t, policy.Fragments)
}

func TestPartitionPolicyParsesEntries(t *testing.T) {
	root := t.TempDir()
	writePartitionFile(t, root, "vendor/overlay/config/config.xml", `<config>
  <overlay package="com.vendor.theme" enabled="true" mutable="false"/>
  <overlay package="com.vendor.icons"/>
</config>`)
	partition := types.NewPartition(types.PartitionVendor, root)

	policy, err := NewOverlayConfigXMLAdapter().PartitionPolicy(partition)
	require.NoError(t, err)
	require.Len(t, policy.Fragments, 2)

	theme := policy.Fragments[0]
	assert.Equal(t, "com.vendor.theme", theme.PackageName)
	assert.True(t, theme.Enabled)
	assert.False(t, theme.Mutable)
	assert.Equal(t, types.PartitionVendor, theme.Partition)

	// Absent attributes fall back to disabled and mutable.
	icons := policy.Fragments[1]
	assert.Equal(t, "com.vendor.icons", icons.PackageName)
	assert.False(t, icons.Enabled)
	assert.True(t, icons.Mutable)
}

func TestPartitionPolicyRejectsWrongRootElement(t *testing.T) {
	root := t.TempDir()
	writePartitionFile(t, root, "vendor/overlay/config/config.xml", `<overlays>
  <overlay package="com.vendor.theme" enabled="true"/>
</overlays>`)
	partition := types.NewPartition(types.PartitionVendor, root)

	policy, err := NewOverlayConfigXMLAdapter().PartitionPolicy(partition)
	require.NoError(t, err)
	assert.Empty(t, policy.Fragments)
}

func TestPartitionPolicySkipsMalformedEntries(t *testing.T) {
	root := t.TempDir()
	writePartitionFile(t, root, "system/overlay/config/config.xml", `<config>
  <overlay enabled="true"/>
  <overlay package="com.system.bad" enabled="not-a-bool"/>
  <overlay package="com.system.good" enabled="true"/>
</config>`)
	partition := types.NewPartition(types.PartitionSystem, root)

	policy, err := NewOverlayConfigXMLAdapter().PartitionPolicy(partition)
	require.NoError(t, err)
	require.Len(t, policy.Fragments, 1)
	assert.Equal(t, "com.system.good", policy.Fragments[0].PackageName)
}

func TestPartitionPolicyMergesIncludes(t *testing.T) {
	root := t.TempDir()
	writePartitionFile(t, root, "product/overlay/config/config.xml", `<config>
  <merge path="shared.xml"/>
  <overlay package="com.product.local" enabled="true"/>
</config>`)
	writePartitionFile(t, root, "product/overlay/config/shared.xml", `<config>
  <overlay package="com.product.shared" enabled="true" mutable="false"/>
</config>`)
	partition := types.NewPartition(types.PartitionProduct, root)

	policy, err := NewOverlayConfigXMLAdapter().PartitionPolicy(partition)
	require.NoError(t, err)
	require.Len(t, policy.Fragments, 2)

	// Included entries come first so local declarations win downstream.
	assert.Equal(t, "com.product.shared", policy.Fragments[0].PackageName)
	assert.Equal(t, "com.product.local", policy.Fragments[1].PackageName)
}

func TestPartitionPolicyBoundsMergeDepth(t *testing.T) {
	root := t.TempDir()
	writePartitionFile(t, root, "oem/overlay/config/config.xml", `<config>
  <merge path="config.xml"/>
  <overlay package="com.oem.overlay" enabled="true"/>
</config>`)
	partition := types.NewPartition(types.PartitionOem, root)

	policy, err := NewOverlayConfigXMLAdapter().PartitionPolicy(partition)
	require.NoError(t, err)
	assert.NotEmpty(t, policy.Fragments)
	for _, fragment := range policy.Fragments {
		assert.Equal(t, "com.oem.overlay", fragment.PackageName)
	}
}

func TestPartitionPolicySkipsMissingInclude(t *testing.T) {
	root := t.TempDir()
	writePartitionFile(t, root, "odm/overlay/config/config.xml", `<config>
  <merge path="nope.xml"/>
  <overlay package="com.odm.overlay" enabled="true"/>
</config>`)
	partition := types.NewPartition(types.PartitionOdm, root)

	policy, err := NewOverlayConfigXMLAdapter().PartitionPolicy(partition)
	require.NoError(t, err)
	require.Len(t, policy.Fragments, 1)
	assert.Equal(t, "com.odm.overlay", policy.Fragments[0].PackageName)
}
