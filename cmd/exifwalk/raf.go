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

package main

import (
	"flag"
	"fmt"
	"os"

	"exifwalk.org/pkg/cmdmain"
	"exifwalk.org/pkg/media/raf"
)

type rafCmd struct{}

func init() {
	cmdmain.RegisterMode("raf", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return new(rafCmd)
	})
}

func (c *rafCmd) Describe() string { return "Print the header of a Fuji RAF file." }

func (c *rafCmd) Usage() {
	fmt.Fprintln(cmdmain.Stderr, "Usage: exifwalk [globalopts] raf <file>")
}

func (c *rafCmd) RunCommand(args []string) error {
	if len(args) != 1 {
		return cmdmain.UsageError("expected 1 argument")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	var buf [raf.HeaderSize]byte
	n, _ := f.ReadAt(buf[:], 0)
	h, err := raf.Parse(buf[:n])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	w := cmdmain.Stdout
	fmt.Fprintf(w, "format:            %q\n", h.Format)
	fmt.Fprintf(w, "version:           %s\n", h.Version)
	fmt.Fprintf(w, "camera id:         %s\n", h.CameraID)
	fmt.Fprintf(w, "model:             %s\n", h.Model)
	fmt.Fprintf(w, "directory version: %s\n", h.DirectoryVersion)
	for _, s := range []struct {
		name string
		raf.Section
	}{
		{"jpeg", h.JPEG},
		{"cfa header", h.CFAHeader},
		{"cfa", h.CFA},
	} {
		fmt.Fprintf(w, "%-18s offset %d, length %d\n", s.name+":", s.Offset, s.Length)
	}
	return nil
}
