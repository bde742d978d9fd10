// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

// Package util carries the common plumbing the gcdengine packages share:
// JSON configuration loading (cleanenv), rotating file logging (lumberjack),
// a periodic monitor for service health data, and small generic containers.
//
// Configuration files passed with an absolute path are read as is. A bare
// file name is looked up in the directory named by the GO_CFG_HOME
// environment variable.
package util

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

type ConfigHome struct {
	Dir string `env:"GO_CFG_HOME" env-description:"Directory where configuration files live"`
}

var cfgHome ConfigHome

// ReadCfg populates cfg from the named JSON configuration file, located per
// the package rules above.
func ReadCfg(cfg interface{}, fileName string) error {
	path, err := cfgFilePath(fileName)
	if err != nil {
		return err
	}
	return cleanenv.ReadConfig(path, cfg)
}

// GetCfgHomeDir returns the directory which holds configuration files.
func GetCfgHomeDir() (string, error) {
	err := cleanenv.ReadEnv(&cfgHome)
	if err != nil {
		return "", errors.Wrap(err, "reading GO_CFG_HOME")
	}
	return cfgHome.Dir, nil
}

// ExtractCfgJsonEleFromFile returns the raw JSON segment for the named
// top-level element of the given configuration file. Services keep all
// their settings in one uber file and pull out the element they own.
func ExtractCfgJsonEleFromFile(fileName string, elementName string) ([]byte, error) {
	path, err := cfgFilePath(fileName)
	if err != nil {
		return nil, err
	}
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractCfgJsonEleFromBytes(byteValue, elementName)
}

// ExtractCfgJsonEleFromBytes returns the raw JSON segment for the named
// top-level element of the given configuration content.
func ExtractCfgJsonEleFromBytes(byteValue []byte, elementName string) ([]byte, error) {
	var result map[string]interface{}
	if err := json.Unmarshal(byteValue, &result); err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}
	ele, ok := result[elementName]
	if !ok {
		return nil, errors.Errorf("configuration has no element %s", elementName)
	}
	return json.Marshal(ele)
}

func cfgFilePath(fn string) (string, error) {
	if isAbsFilepath(fn) {
		return fn, nil
	}
	err := cleanenv.ReadEnv(&cfgHome)
	if err != nil {
		return "", errors.Wrap(err, "reading GO_CFG_HOME")
	}
	if len(cfgHome.Dir) == 0 {
		return "", errors.New("GO_CFG_HOME is not defined")
	}
	return cfgHome.Dir + "/" + fn, nil
}

func isAbsFilepath(fn string) bool {
	filePath, err := filepath.Abs(fn)
	return err == nil && filePath == fn
}
