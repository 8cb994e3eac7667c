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
	"io"
	"os"
	"strings"

	"go4.org/readerutil"
	"go4.org/syncutil"

	"exifwalk.org/internal/config"
	"exifwalk.org/pkg/cmdmain"
	"exifwalk.org/pkg/exif"
	"exifwalk.org/pkg/images"
)

type dumpCmd struct {
	all     bool
	formats string
	workers int
}

func init() {
	cmdmain.RegisterMode("dump", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		cmd := new(dumpCmd)
		flags.BoolVar(&cmd.all, "all", false, "Also list the tags that failed to decode, with the reason.")
		flags.StringVar(&cmd.formats, "format", "", "Comma-separated list of value formats to print (ubyte, ascii, ushort, ulong, urational, sbyte, undefined, sshort, slong, srational, float, double). Default from the configuration, else all.")
		flags.IntVar(&cmd.workers, "j", 0, "Number of files decoded concurrently. Default from the configuration.")
		return cmd
	})
}

func (c *dumpCmd) Describe() string { return "Print the EXIF tags of image files." }

func (c *dumpCmd) Usage() {
	fmt.Fprintln(cmdmain.Stderr, "Usage: exifwalk [globalopts] dump [dumpopts] <file(s)>")
}

func (c *dumpCmd) Examples() []string {
	return []string{
		"IMG_0001.JPG",
		"-all -format ascii,urational -j 8 *.CR2",
	}
}

// fileResult is the outcome of decoding one file.
type fileResult struct {
	name string
	res  *images.Result
	err  error
}

func (c *dumpCmd) RunCommand(args []string) error {
	if len(args) == 0 {
		return cmdmain.UsageError("no files given")
	}
	// Flags override the configuration file.
	opts := *conf
	if c.formats != "" {
		opts.Formats = nil
		for _, name := range strings.Split(c.formats, ",") {
			f, err := exif.ParseFormat(strings.TrimSpace(name))
			if err != nil {
				return cmdmain.UsageError(err.Error())
			}
			opts.Formats = append(opts.Formats, f)
		}
	}
	if c.workers != 0 {
		opts.Workers = c.workers
	}
	if opts.Workers < 1 {
		return cmdmain.UsageError("-j must be at least 1")
	}

	results := make([]fileResult, len(args))
	gate := syncutil.NewGate(opts.Workers)
	var grp syncutil.Group
	for i, name := range args {
		gate.Start()
		grp.Go(func() error {
			defer gate.Done()
			res, err := decodeFile(name, &opts)
			results[i] = fileResult{name: name, res: res, err: err}
			return err
		})
	}
	grp.Wait()

	for i, fr := range results {
		if i > 0 {
			fmt.Fprintln(cmdmain.Stdout)
		}
		if fr.err != nil {
			fmt.Fprintf(cmdmain.Stdout, "%s: %v\n", fr.name, fr.err)
			continue
		}
		c.printResult(cmdmain.Stdout, fr.name, fr.res, &opts)
	}
	if errs := grp.Errs(); len(errs) > 0 {
		return fmt.Errorf("%d of %d files could not be decoded", len(errs), len(args))
	}
	return nil
}

// decodeFile reads the file at name, up to the configured maximum size,
// and decodes its EXIF.
func decodeFile(name string, opts *config.Config) (*images.Result, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if size, ok := readerutil.Size(f); ok && size > opts.MaxFileSize {
		return nil, fmt.Errorf("file size %d exceeds max_file_size %d", size, opts.MaxFileSize)
	}
	data, err := io.ReadAll(io.LimitReader(f, opts.MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > opts.MaxFileSize {
		return nil, fmt.Errorf("file exceeds max_file_size %d", opts.MaxFileSize)
	}
	d := &exif.Decoder{
		Logf: func(format string, args ...any) {
			cmdmain.Logf("%s: %s", name, fmt.Sprintf(format, args...))
		},
		NoSubIFD: !opts.SubIFD,
	}
	return images.DecodeEXIF(data, d)
}

func (c *dumpCmd) printResult(w io.Writer, name string, res *images.Result, opts *config.Config) {
	var failed int
	for _, t := range res.Tags {
		if t.Err != nil {
			failed++
		}
	}
	fmt.Fprintf(w, "%s: %s, %v, %d tags", name, res.MIME, res.Exif.Endian(), len(res.Tags))
	if failed > 0 {
		fmt.Fprintf(w, " (%d failed)", failed)
	}
	if res.Width > 0 {
		fmt.Fprintf(w, ", %dx%d", res.Width, res.Height)
	}
	fmt.Fprintln(w)
	if o := res.Orientation(); o != 1 {
		angle, flip := images.Transform(o)
		fmt.Fprintf(w, "  orientation %d: rotate %d, flip %v\n", o, angle, flip)
	}
	if t, err := res.DateTime(); err == nil {
		fmt.Fprintf(w, "  date %s\n", t.Format("2006-01-02 15:04:05"))
	}
	for _, t := range res.Tags {
		if t.Err != nil && !c.all {
			continue
		}
		if !opts.Filter(t.Format) {
			continue
		}
		fmt.Fprintf(w, "  %v\n", t)
	}
}
