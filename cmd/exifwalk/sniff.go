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

	"exifwalk.org/internal/magic"
	"exifwalk.org/pkg/cmdmain"
)

type sniffCmd struct{}

func init() {
	cmdmain.RegisterMode("sniff", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return new(sniffCmd)
	})
}

func (c *sniffCmd) Describe() string { return "Print the detected container type of files." }

func (c *sniffCmd) Usage() {
	fmt.Fprintln(cmdmain.Stderr, "Usage: exifwalk [globalopts] sniff <file(s)>")
}

func (c *sniffCmd) Demote() bool { return true }

func (c *sniffCmd) RunCommand(args []string) error {
	if len(args) == 0 {
		return cmdmain.UsageError("no files given")
	}
	var failed int
	for _, name := range args {
		mime, err := sniffFile(name)
		if err != nil {
			cmdmain.Errorf("%v\n", err)
			failed++
			continue
		}
		if mime == "" {
			mime = "unknown"
		}
		fmt.Fprintf(cmdmain.Stdout, "%s: %s\n", name, mime)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(args))
	}
	return nil
}

func sniffFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return magic.MIMETypeFromReaderAt(f), nil
}
