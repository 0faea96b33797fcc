package test_helper

import (
	"archive/zip"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// WriteZip writes a zip archive to name (relative to a fresh temp dir
// unless absolute) holding the given files, with explicit entries for
// every parent directory the way most archive builders emit them.
// It returns the absolute path of the archive.
func WriteZip(t *testing.T, name string, files map[string]string) string {
	t.Helper()

	if !filepath.IsAbs(name) {
		name = filepath.Join(t.TempDir(), name)
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		t.Fatalf("can't create fixture dir: %s", err)
	}

	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("can't create zip fixture: %s", err)
	}
	defer f.Close()

	var (
		zw    = zip.NewWriter(f)
		dirs  = map[string]bool{}
		paths = make([]string, 0, len(files))
	)
	for p := range files {
		paths = append(paths, p)
		for d := path.Dir(p); d != "." && d != "/"; d = path.Dir(d) {
			dirs[d+"/"] = true
		}
	}
	for d := range dirs {
		paths = append(paths, d)
	}
	sort.Strings(paths)

	for _, p := range paths {
		w, err := zw.Create(p)
		if err != nil {
			t.Fatalf("can't add %s to zip fixture: %s", p, err)
		}
		if strings.HasSuffix(p, "/") {
			continue
		}
		if _, err := w.Write([]byte(files[p])); err != nil {
			t.Fatalf("can't write %s to zip fixture: %s", p, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("can't finish zip fixture: %s", err)
	}
	return name
}
