/*
Copyright 2013 The Perkeep Authors

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

// Package buildinfo provides information about the current build.
package buildinfo // import "exifwalk.org/pkg/buildinfo"

import (
	"flag"
	"runtime/debug"
)

// GitInfo is either the empty string (the default)
// or is set to the git hash of the most recent commit
// using the -X linker flag. For example, it's set like:
// $ go install --ldflags="-X exifwalk.org/pkg/buildinfo.GitInfo="`git rev-parse --short HEAD` exifwalk.org/cmd/exifwalk
var GitInfo string

// Version returns the git version of this binary.
// If the linker flags were not provided, the VCS revision recorded by the
// go command is used, and "unknown" if there is none.
func Version() string {
	if GitInfo != "" {
		return GitInfo
	}
	if rev, dirty := vcsRevision(); rev != "" {
		if len(rev) > 10 {
			rev = rev[:10]
		}
		if dirty {
			rev += "+"
		}
		return rev
	}
	return "unknown"
}

// Summary returns the version and Go version of this binary, for -version
// output.
func Summary() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Version()
	}
	return Version() + ", built with " + bi.GoVersion
}

func vcsRevision() (rev string, dirty bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return rev, dirty
}

// TestingLinked reports whether the "testing" package is linked into the
// binary, which is the case in tests.
func TestingLinked() bool {
	return flag.CommandLine.Lookup("test.v") != nil
}
