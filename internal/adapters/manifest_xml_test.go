package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overlay-config/internal/types"
)

func TestParseOverlayManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<manifest package="com.example.overlay">
  <overlay targetPackage="android" priority="7" isStatic="true"/>
</manifest>`), 0644))

	manifest, isOverlay, err := parseOverlayManifest(path, types.PartitionSystem)
	require.NoError(t, err)
	require.True(t, isOverlay)
	assert.Equal(t, "com.example.overlay", manifest.PackageName)
	assert.Equal(t, "android", manifest.TargetPackage)
	assert.Equal(t, 7, manifest.Priority)
	assert.True(t, manifest.Static)
	assert.Equal(t, types.PartitionSystem, manifest.Partition)
	assert.Equal(t, path, manifest.Path)
}

func TestParseOverlayManifestWithoutOverlayElement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<manifest package="com.plain.app"/>`), 0644))

	_, isOverlay, err := parseOverlayManifest(path, types.PartitionSystem)
	require.NoError(t, err)
	assert.False(t, isOverlay)
}

func TestParseOverlayManifestWithoutPackageName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<manifest>
  <overlay targetPackage="android"/>
</manifest>`), 0644))

	_, _, err := parseOverlayManifest(path, types.PartitionSystem)
	require.Error(t, err)
}

func TestParseOverlayManifestRejectsWrongRootElement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<application package="com.example.overlay">
  <overlay targetPackage="android"/>
</application>`), 0644))

	_, _, err := parseOverlayManifest(path, types.PartitionSystem)
	require.Error(t, err)
}

func TestParseOverlayManifestMissingFile(t *testing.T) {
	_, _, err := parseOverlayManifest(filepath.Join(t.TempDir(), "manifest.xml"), types.PartitionSystem)
	require.Error(t, err)
}
