/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	"github.com/jcznk/PasteImagesAsWebP/internal/crash"
	applog "github.com/jcznk/PasteImagesAsWebP/internal/log"
	"github.com/jcznk/PasteImagesAsWebP/internal/version"
)

func usage() {
	fmt.Println("Paste Images As WebP: settings tool")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pasteimages version|-v|--version           Show version")
	fmt.Println("  pasteimages config show|path|reset          Print effective config, its path, or reset to defaults")
	fmt.Println("  pasteimages probe <image>                   Print the size of an image")
	fmt.Println("  pasteimages scale <image> <factor>          Scale the stored width/height to <factor> of the image and save")
	fmt.Println("  pasteimages fields [<collection.sqlite>]    List field names across all notes")
	fmt.Println("  pasteimages settings                        Open the global settings dialog (build with -tags fyne)")
	fmt.Println("  pasteimages paste <image>                   Open the paste dialog for <image> (build with -tags fyne)")
	fmt.Println("  pasteimages bulk [<collection.sqlite>]      Open the bulk convert dialog (build with -tags fyne)")
	fmt.Println()
	fmt.Println("Set PIW_PG_DSN to use a Postgres collection instead of a SQLite file.")
}

func fail(l *slog.Logger, msg string, err error) {
	l.Error(msg, slog.Any("err", err))
	fmt.Println("Error:", err)
	os.Exit(1)
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")

	store, err := config.NewFileStore("")
	if err != nil {
		fail(l, "resolve config path failed", err)
	}
	defer crash.Recover(filepath.Dir(store.Path))

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage()
		return
	}
	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println("Paste Images As WebP")
		fmt.Println(version.String())
	case "config":
		sub := "show"
		if len(args) >= 3 {
			sub = args[2]
		}
		if err := configCommand(os.Stdout, store, sub); err != nil {
			fail(l, "config command failed", err)
		}
	case "probe":
		if len(args) < 3 {
			fmt.Println("probe requires <image>")
			usage()
			os.Exit(2)
		}
		if err := probeCommand(os.Stdout, args[2]); err != nil {
			fail(l, "probe failed", err)
		}
	case "scale":
		if len(args) < 4 {
			fmt.Println("scale requires <image> and <factor>")
			usage()
			os.Exit(2)
		}
		factor, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			fmt.Println("factor must be a number, e.g. 0.5")
			os.Exit(2)
		}
		if err := scaleCommand(os.Stdout, store, args[2], factor); err != nil {
			fail(l, "scale failed", err)
		}
	case "fields":
		if err := fieldsCommand(os.Stdout, optionalArg(args, 2)); err != nil {
			fail(l, "fields failed", err)
		}
	case "settings":
		if err := settingsCommand(store); err != nil {
			fail(l, "settings dialog failed", err)
		}
	case "paste":
		if len(args) < 3 {
			fmt.Println("paste requires <image>")
			usage()
			os.Exit(2)
		}
		if err := pasteCommand(store, args[2]); err != nil {
			fail(l, "paste dialog failed", err)
		}
	case "bulk":
		if err := bulkCommand(store, optionalArg(args, 2)); err != nil {
			fail(l, "bulk dialog failed", err)
		}
	default:
		usage()
	}
}

func optionalArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
