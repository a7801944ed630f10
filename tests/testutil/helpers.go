// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WriteFile creates relPath under root, including parent directories.
func WriteFile(t *testing.T, root string, relPath string, content string) {
	t.Helper()
	path := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// WriteOverlayTree lays out a small partition tree with overlays on
// vendor and product, the product declaration overriding vendor's.
func WriteOverlayTree(t *testing.T, root string) {
	t.Helper()
	WriteFile(t, root, "vendor/overlay/theme/manifest.xml", `<manifest package="com.vendor.theme">
  <overlay targetPackage="android"/>
</manifest>`)
	WriteFile(t, root, "vendor/overlay/config/config.xml", `<config>
  <overlay package="com.vendor.theme" enabled="true" mutable="false"/>
</config>`)
	WriteFile(t, root, "product/overlay/sounds/manifest.xml", `<manifest package="com.product.sounds">
  <overlay targetPackage="com.android.systemui"/>
</manifest>`)
	WriteFile(t, root, "product/overlay/config/config.xml", `<config>
  <overlay package="com.product.sounds" enabled="true"/>
  <overlay package="com.vendor.theme" enabled="false"/>
</config>`)
}
