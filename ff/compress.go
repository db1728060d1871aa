/*
 * compress.go, part of gosimm.
 *
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ff

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// *zstd.Decoder doesn't implement io.ReadCloser, its
// Close has no return value.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// fileReadCloser closes the decompressor and then the file under it.
type fileReadCloser struct {
	io.ReadCloser
	f *os.File
}

func (f fileReadCloser) Close() error {
	err := f.ReadCloser.Close()
	if err2 := f.f.Close(); err == nil {
		err = err2
	}
	return err
}

type compression int

const (
	plain compression = iota
	zstdComp
	gzipComp
)

// compressionFor picks the compression from the file extension.
func compressionFor(name string) compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return zstdComp
	case ".gz":
		return gzipComp
	}
	return plain
}

// openCatalog opens the file name for reading, decompressing it if the
// extension calls for it.
func openCatalog(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var rc io.ReadCloser
	switch compressionFor(name) {
	case zstdComp:
		var d *zstd.Decoder
		d, err = zstd.NewReader(bufio.NewReader(f))
		rc = zstdReadCloser{d}
	case gzipComp:
		rc, err = gzip.NewReader(bufio.NewReader(f))
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return fileReadCloser{ReadCloser: rc, f: f}, nil
}

// fileWriteCloser flushes and closes the compressor and then the file under it.
type fileWriteCloser struct {
	io.WriteCloser
	f *os.File
}

func (f fileWriteCloser) Close() error {
	err := f.WriteCloser.Close()
	if err2 := f.f.Close(); err == nil {
		err = err2
	}
	return err
}

// createCatalog creates the file name for writing, compressing the output
// if the extension calls for it.
func createCatalog(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	var wc io.WriteCloser
	switch compressionFor(name) {
	case zstdComp:
		wc, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case gzipComp:
		wc, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return fileWriteCloser{WriteCloser: wc, f: f}, nil
}
