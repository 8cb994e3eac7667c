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
	"errors"
	"flag"
	"io/fs"

	"exifwalk.org/internal/config"
	"exifwalk.org/internal/osutil"
	"exifwalk.org/pkg/cmdmain"
)

var flagConfig = flag.String("config", "", "configuration file (default config.hcl in the configuration directory)")

// conf is the configuration in effect, set once flags are parsed.
var conf = config.Default()

func init() {
	cmdmain.PostFlag = func() error {
		c, err := loadConfig(*flagConfig)
		if err != nil {
			return err
		}
		conf = c
		return nil
	}
}

// loadConfig loads the configuration file at path, or at the default
// location if path is empty. Only the default file may be missing.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = osutil.UserConfigPath()
	}
	c, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		cmdmain.Logf("no configuration file at %s, using defaults", path)
		return config.Default(), nil
	}
	return c, err
}

func main() {
	cmdmain.Main()
}
