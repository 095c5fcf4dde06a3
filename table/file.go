// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package table

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// FormatOf derives the format of a table file from its name, ignoring a
// trailing .gz.
func FormatOf(path string) (Format, error) {
	name := strings.TrimSuffix(strings.ToLower(path), ".gz")
	switch filepath.Ext(name) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, errors.Wrapf(ErrUnknownFormat, "file %s", path)
	}
}

func compressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// Read loads a table file. Files ending in .gz are gunzipped first.
func Read(path string) (_ *File, err error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open table file %s", path)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	var r io.Reader = file
	if compressed(path) {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot create gzip reader for table file %s", path)
		}
		defer zr.Close()
		r = zr
	}
	f, err := Decode(r, format)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read table file %s", path)
	}
	return f, nil
}

// Write stores a table file, gzipped if the name ends in .gz.
func Write(path string, f *File) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create table file %s", path)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if !compressed(path) {
		return errors.Wrapf(Encode(file, f, format), "cannot write table file %s", path)
	}
	zw := gzip.NewWriter(file)
	if err := Encode(zw, f, format); err != nil {
		return errors.Join(errors.Wrapf(err, "cannot write table file %s", path), zw.Close())
	}
	return zw.Close()
}
