// Package constants holds file system values shared by the commands and the client.
package constants

import "os"

const (
	// DefaultFilePermissions is used for saved workbooks and output files (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultFolderPermissions is used for the workbook and output folders (rwxr-xr-x).
	DefaultFolderPermissions os.FileMode = 0o755
)

// Extensions recognized by the client and the output writer.
const (
	// ExtensionXLSX marks a license workbook inside a region archive.
	ExtensionXLSX = ".xlsx"
	// ExtensionZIP marks a region archive.
	ExtensionZIP = ".zip"
	// ExtensionYAML and ExtensionYML select YAML output when no format is given.
	ExtensionYAML = ".yaml"
	ExtensionYML  = ".yml"
)
