// Package mimetype recognises the archive formats a project backup can be
// exported in.
package mimetype

import "strings"

const (
	Tar  = "application/x-tar"
	Gzip = "application/gzip"
	Zip  = "application/zip"
)

var archiveSuffixes = []struct {
	suffix string
	mime   string
}{
	{".tar.gz", Gzip},
	{".tgz", Gzip},
	{".tar", Tar},
	{".zip", Zip},
}

// IsArchive returns the mime type of a backup archive judged by its name.
func IsArchive(filename string) (string, bool) {
	lower := strings.ToLower(filename)

	for _, a := range archiveSuffixes {
		if strings.HasSuffix(lower, a.suffix) {
			return a.mime, true
		}
	}

	return "", false
}
