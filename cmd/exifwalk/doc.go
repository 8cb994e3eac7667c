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

/*
The exifwalk tool prints the EXIF metadata of image files: the tags of
IFD0 and of the EXIF Sub-IFD, from JPEG, TIFF, Canon CR2, Olympus ORF,
Fuji RAF and HEIC files.

Usage:

	exifwalk [globalopts] <mode> [commandopts] [commandargs]

Modes:

	dump: Print the EXIF tags of image files.
	raf: Print the header of a Fuji RAF file.
	sniff: Print the detected container type of files.

Examples:

	exifwalk dump IMG_0001.JPG
	exifwalk dump -all -format ascii,urational -j 8 *.CR2
	exifwalk raf DSCF0001.RAF
	exifwalk sniff DSCF0001.RAF IMG_0001.HEIC

For mode-specific help:

	exifwalk <mode> -help

Global options:

	-config="": configuration file (default config.hcl in the configuration directory)
	-help=false: print usage
	-legal=false: show licenses
	-verbose=false: extra debug logging
	-version=false: show version

The configuration directory is $EXIFWALK_CONFIG_DIR if set, else
$XDG_CONFIG_HOME/exifwalk, else ~/.config/exifwalk. See package
exifwalk.org/internal/config for the file format.
*/
package main // import "exifwalk.org/cmd/exifwalk"
