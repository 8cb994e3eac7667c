/*
Copyright 2011 The Perkeep Authors

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


// Package osutil provides operating system-specific path information.
package osutil // import "exifwalk.org/internal/osutil"

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"go4.org/xdgdir"

	"exifwalk.org/pkg/buildinfo"
)

const appName = "exifwalk"

// ConfigDirEnv names the environment variable overriding ConfigDir.
const ConfigDirEnv = "EXIFWALK_CONFIG_DIR"

// HomeDir returns the path to the user's home directory.
// It returns the empty string if the value isn't known.
func HomeDir() string {
	failInTests()
	dir, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return dir
}

// RegisterConfigDirFunc registers a func f to return the exifwalk configuration directory.
// It may skip by returning the empty string.
func RegisterConfigDirFunc(f func() string) {
	configDirFuncs = append(configDirFuncs, f)
}

var configDirFuncs []func() string

// ConfigDir returns the exifwalk configuration directory. In order, it is
// the value of $EXIFWALK_CONFIG_DIR, the first non-empty result of the
// functions registered with RegisterConfigDirFunc, "exifwalk" under the XDG
// config directory, and ~/.config/exifwalk.
func ConfigDir() string {
	if p := os.Getenv(ConfigDirEnv); p != "" {
		return p
	}
	for _, f := range configDirFuncs {
		if v := f(); v != "" {
			return v
		}
	}
	if p := xdgdir.Config.Path(); p != "" {
		return filepath.Join(p, appName)
	}
	return filepath.Join(HomeDir(), ".config", appName)
}

// UserConfigPath returns the path of the default configuration file.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), "config.hcl")
}

func failInTests() {
	if buildinfo.TestingLinked() {
		panic("Unexpected non-hermetic use of host configuration during testing. (alternatively: the 'testing' package got accidentally linked in)")
	}
}
