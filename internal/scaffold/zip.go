package scaffold

import (
	"archive/zip"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// ZipPackager writes a file map into a single deflated zip archive.
type ZipPackager struct{}

func NewZipPackager() *ZipPackager { return &ZipPackager{} }

// Package writes files to a zip at outPath. Entries are written in sorted
// path order so the same file set always produces the same entry sequence;
// backslashes in paths are normalized to forward slashes.
func (p *ZipPackager) Package(files map[string]string, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", outPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		arcname := strings.ReplaceAll(path, `\`, "/")
		w, err := zw.Create(arcname)
		if err != nil {
			return fmt.Errorf("adding %s to archive: %w", arcname, err)
		}
		if _, err := w.Write([]byte(files[path])); err != nil {
			return fmt.Errorf("writing %s to archive: %w", arcname, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive %s: %w", outPath, err)
	}
	return nil
}

// ArchiveName builds the default artifact name for an app: the app name with
// spaces underscored, a scaffold tag and a UTC timestamp.
func ArchiveName(appName string, now time.Time) string {
	safe := strings.ReplaceAll(appName, " ", "_")
	return fmt.Sprintf("%s_scaffold_%s.zip", safe, now.UTC().Format("20060102150405"))
}
