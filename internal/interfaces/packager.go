package interfaces

// Packager turns an assembled file map into a single artifact on disk.
// The file map keys are forward-slash relative paths.
type Packager interface {
	Package(files map[string]string, outPath string) error
}
