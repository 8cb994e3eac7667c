/*
Copyright 2026 The Perkeep Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"exifwalk.org/pkg/exif"
)

func TestLoad(t *testing.T) {
	t.Setenv("EXIFWALK_TEST_WORKERS", "8")
	conf, err := Load(filepath.Join("testdata", "config.hcl"))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		MaxFileSize: 256 << 20,
		Workers:     8,
		SubIFD:      false,
		Formats:     []exif.Format{exif.ASCIIString, exif.UnsignedRational},
	}
	if diff := cmp.Diff(want, conf); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
	if !conf.Filter(exif.ASCIIString) || conf.Filter(exif.UnsignedShort) {
		t.Errorf("Filter does not follow formats %v", conf.Formats)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.hcl"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v; want fs.ErrNotExist", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    *Config
		wantErr string
	}{
		{
			name: "empty",
			src:  "",
			want: Default(),
		},
		{
			name: "workers only",
			src:  "workers = 2\n",
			want: &Config{MaxFileSize: DefaultMaxFileSize, Workers: 2, SubIFD: true},
		},
		{
			name:    "unknown attribute",
			src:     "threads = 2\n",
			wantErr: "threads",
		},
		{
			name:    "unknown block",
			src:     "output {\n}\n",
			wantErr: "output",
		},
		{
			name:    "duplicate variables",
			src:     "variables {\n}\nvariables {\n}\n",
			wantErr: "Duplicate 'variables' block",
		},
		{
			name:    "bad format",
			src:     `formats = ["ascii", "int128"]` + "\n",
			wantErr: "int128",
		},
		{
			name:    "zero workers",
			src:     "workers = 0\n",
			wantErr: "Invalid 'workers' value",
		},
		{
			name:    "negative size",
			src:     "max_file_size = -1\n",
			wantErr: "Invalid 'max_file_size' value",
		},
		{
			name:    "wrong type",
			src:     `sub_ifd = "maybe"` + "\n",
			wantErr: "test.hcl:1",
		},
		{
			name:    "syntax",
			src:     "workers = \n",
			wantErr: "test.hcl",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.src), "test.hcl")
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v; want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
