package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overlay-config/internal/types"
)

func writePartitionFile(t *testing.T, root string, relPath string, content string) {
	t.Helper()
	path := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanPartitionMissingOverlayDir(t *testing.T) {
	root := t.TempDir()
	partition := types.NewPartition(types.PartitionVendor, root)

	manifests, err := NewOverlayScannerAdapter().ScanPartition(partition)
	require.NoError(t, err)
	assert.Empty(t, manifests)
}

func TestScanPartitionFindsOverlayPackages(t *testing.T) {
	root := t.TempDir()
	writePartitionFile(t, root, "vendor/overlay/theme/manifest.xml", `<manifest package="com.vendor.theme">
  <overlay targetPackage="android" priority="3" isStatic="true"/>
</manifest>`)
	writePartitionFile(t, root, "vendor/overlay/icons/manifest.xml", `<manifest package="com.vendor.icons">
  <overlay targetPackage="com.android.systemui"/>
</manifest>`)
	partition := types.NewPartition(types.PartitionVendor, root)

	manifests, err := NewOverlayScannerAdapter().ScanPartition(partition)
	require.NoError(t, err)
	require.Len(t, manifests, 2)

	byName := map[string]types.OverlayManifest{}
	for _, manifest := range manifests {
		byName[manifest.PackageName] = manifest
	}
	theme := byName["com.vendor.theme"]
	assert.Equal(t, "android", theme.TargetPackage)
	assert.Equal(t, 3, theme.Priority)
	assert.True(t, theme.Static)
	assert.Equal(t, types.PartitionVendor, theme.Partition)

	icons := byName["com.vendor.icons"]
	assert.Equal(t, "com.android.systemui", icons.TargetPackage)
	assert.False(t, icons.Static)
}

func TestScanPartitionSkipsNonOverlayManifests(t *testing.T) {
	root := t.TempDir()
	writePartitionFile(t, root, "system/overlay/app/manifest.xml", `<manifest package="com.plain.app"/>`)
	partition := types.NewPartition(types.PartitionSystem, root)

	manifests, err := NewOverlayScannerAdapter().ScanPartition(partition)
	require.NoError(t, err)
	assert.Empty(t, manifests)
}

func TestScanPartitionSkipsMalformedManifests(t *testing.T) {
	root := t.TempDir()
	writePartitionFile(t, root, "system/overlay/broken/manifest.xml", `<manifest package=`)
	writePartitionFile(t, root, "system/overlay/good/manifest.xml", `<manifest package="com.good.overlay">
  <overlay targetPackage="android"/>
</manifest>`)
	partition := types.NewPartition(types.PartitionSystem, root)

	manifests, err := NewOverlayScannerAdapter().ScanPartition(partition)
	require.NoError(t, err)
	require.Len(t, manifests, 1)
	assert.Equal(t, "com.good.overlay", manifests[0].PackageName)
}

func TestScanPartitionSkipsConfigDir(t *testing.T) {
	root := t.TempDir()
	writePartitionFile(t, root, "product/overlay/config/manifest.xml", `<manifest package="com.not.a.package">
  <overlay targetPackage="android"/>
</manifest>`)
	partition := types.NewPartition(types.PartitionProduct, root)

	manifests, err := NewOverlayScannerAdapter().ScanPartition(partition)
	require.NoError(t, err)
	assert.Empty(t, manifests)
}
