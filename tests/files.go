// Package tests locates, and downloads on first use, the external test suites
// used by the emulator tests. Tests depending on a suite are skipped when it
// can't be downloaded.
package tests

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"
)

// set NESDBG_OFFLINE to skip downloads.
const offlineEnv = "NESDBG_OFFLINE"

func testsDir() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Dir(b)
}

func decompress(zipFile, dest string) error {
	r, err := zip.OpenReader(zipFile)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		fname := strings.Replace(f.Name, "nes-test-roms-master", "nes-test-roms", 1)
		fpath := filepath.Join(dest, fname)
		if !strings.HasPrefix(fpath, filepath.Clean(dest)+string(os.PathSeparator)) {
			return errors.Errorf("%s: illegal file path", fpath)
		}

		if f.FileInfo().IsDir() {
			os.MkdirAll(fpath, os.ModePerm)
			continue
		}

		if err = os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
			return err
		}
		if err := extract(f, fpath); err != nil {
			return err
		}
	}
	return nil
}

func extract(f *zip.File, fpath string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func download(url string, w io.Writer) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("GET %s: %s", url, resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

func downloadTestRoms(dest string) error {
	const url = `https://github.com/christopherpow/nes-test-roms/archive/refs/heads/master.zip`

	tmpf, err := os.CreateTemp("", "nes-test-roms-*-.zip")
	if err != nil {
		return err
	}
	defer os.Remove(tmpf.Name())

	if err := download(url, tmpf); err != nil {
		tmpf.Close()
		return err
	}
	tmpf.Close()

	if err := decompress(tmpf.Name(), dest); err != nil {
		return errors.Wrap(err, "decompress test roms")
	}
	return nil
}

// download all 256 (one per opcode) Tom Harte 6502 test files into dest dir.
func downloadTomHarteProcTests(dest string) error {
	const urlfmt = `https://raw.githubusercontent.com/SingleStepTests/65x02/main/nes6502/v1/%s.json`

	tempdir, err := os.MkdirTemp("", "tom.harte.processor.tests.*")
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for opcode := range 256 {
		opstr := fmt.Sprintf("%02x", opcode)
		url := fmt.Sprintf(urlfmt, opstr)

		g.Go(func() error {
			f, err := os.Create(filepath.Join(tempdir, opstr+".json"))
			if err != nil {
				return err
			}
			defer f.Close()
			return download(url, f)
		})
	}

	if err := g.Wait(); err != nil {
		os.RemoveAll(tempdir)
		return errors.Wrap(err, "download processor tests")
	}
	return os.Rename(tempdir, dest)
}

type suite struct {
	once sync.Once
	path string
	err  error
}

// fetch returns the directory holding the suite, downloading it with dl if
// it's not there. The test is skipped if that's not possible.
func (s *suite) fetch(tb testing.TB, dir string, dl func() error) string {
	tb.Helper()

	s.once.Do(func() {
		s.path = dir
		if _, err := os.Stat(dir); !errors.Is(err, fs.ErrNotExist) {
			return
		}
		if os.Getenv(offlineEnv) != "" {
			s.err = errors.Errorf("%s not found and %s is set", dir, offlineEnv)
			return
		}
		tb.Logf("%s not found, downloading it...", filepath.Base(dir))
		s.err = dl()
	})

	if s.err != nil {
		tb.Skipf("test suite unavailable: %v", s.err)
	}
	return s.path
}

var roms, procTests suite

// RomsPath returns the path of the nes-test-roms directory.
func RomsPath(tb testing.TB) string {
	dir := testsDir()
	return roms.fetch(tb, filepath.Join(dir, "nes-test-roms"), func() error {
		return downloadTestRoms(dir)
	})
}

// TomHarteProcTestsPath returns the path of the directory holding the nes6502
// single step tests, one JSON file per opcode.
func TomHarteProcTestsPath(tb testing.TB) string {
	dir := filepath.Join(testsDir(), "tomharte.processor.tests")
	return procTests.fetch(tb, dir, func() error {
		return downloadTomHarteProcTests(dir)
	})
}
