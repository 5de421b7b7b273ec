// cmd/ezdemo/config.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mmp/ezwin/log"
	"github.com/mmp/ezwin/platform"
	"github.com/mmp/ezwin/util"
)

// ConfigVersion is bumped whenever Config changes in a way that requires
// upgrading old configuration files.
const ConfigVersion = 1

type Config struct {
	Version int
	Backend string
	Origin  string
	Window  platform.Config
}

func getDefaultConfig() *Config {
	return &Config{
		Version: ConfigVersion,
		Backend: "glfw",
		Origin:  "bottomleft",
		Window:  platform.DefaultConfig(),
	}
}

func configFilePath(path string, lg *log.Logger) string {
	if path != "" {
		return path
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		lg.Errorf("Unable to find user config dir: %v", err)
		dir = "."
	}

	dir = filepath.Join(dir, "ezwin")
	err = os.MkdirAll(dir, 0o700)
	if err != nil {
		lg.Errorf("%s: unable to make directory for config file: %v", dir, err)
	}

	return filepath.Join(dir, "config.json")
}

func (c *Config) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(c)
}

func (c *Config) Save(path string, lg *log.Logger) error {
	fn := configFilePath(path, lg)
	lg.Infof("Saving config to: %s", fn)
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Encode(f)
}

// LoadOrMakeDefaultConfig returns the saved configuration if there is one
// and the default configuration otherwise. If the saved configuration
// can't be decoded, the default is returned along with the error.
func LoadOrMakeDefaultConfig(path string, lg *log.Logger) (*Config, error) {
	fn := configFilePath(path, lg)
	lg.Infof("Loading config from: %s", fn)

	contents, err := os.ReadFile(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return getDefaultConfig(), nil
		}
		return getDefaultConfig(), err
	}

	config := getDefaultConfig()
	if err := util.UnmarshalJSONBytes(contents, config); err != nil {
		return getDefaultConfig(), fmt.Errorf("%s: %w", fn, err)
	}
	if config.Version > ConfigVersion {
		lg.Warnf("%s: config version %d is newer than this program's %d", fn, config.Version, ConfigVersion)
	}
	config.Version = ConfigVersion

	return config, nil
}
