// Package config holds the ambient constants and configuration the rest of
// the module draws on, following the teacher's internal/config package:
// recognized source extensions, the version string, and the kernel module
// alias table.
package config

// Version is the interpreter's version string, set at build time via
// -ldflags the same way the teacher's internal/config.Version is.
var Version = "0.1.0"

const SourceFileExt = ".ml"

// SourceFileExtensions lists every recognized source extension, mirroring
// config.SourceFileExtensions in the teacher repo.
var SourceFileExtensions = []string{".ml", ".elm"}

// TrimSourceExt strips a recognized source extension from name, if present.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}
