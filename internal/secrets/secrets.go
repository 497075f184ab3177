// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads Workfront credentials from outside the source tree.
// Two sources are supported: a directory of plain-text files, where the
// filename is the key name and the trimmed contents are the value, and a
// dotenv file.
//
// Supported key files: workfront-api-key, workfront-username.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Key file names understood by the CLI.
const (
	APIKeyFile   = "workfront-api-key"
	UsernameFile = "workfront-username"
)

// envKeys maps dotenv variable names to the key file names above. The
// VITE_ prefixed name is what older frontend .env files used.
var envKeys = map[string]string{
	"WORKFRONT_API_KEY":      APIKeyFile,
	"VITE_WORKFRONT_API_KEY": APIKeyFile,
	"WORKFRONT_USERNAME":     UsernameFile,
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// LoadEnvFile reads a dotenv file and returns the Workfront credentials it
// defines, keyed by key file name. A missing file yields an empty map. The
// process environment is not modified.
func LoadEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	secrets := make(map[string]string)
	for envName, key := range envKeys {
		value := strings.TrimSpace(vars[envName])
		if value == "" {
			continue
		}
		// WORKFRONT_API_KEY wins over the legacy VITE_ name.
		if _, taken := secrets[key]; taken && strings.HasPrefix(envName, "VITE_") {
			continue
		}
		secrets[key] = value
	}
	return secrets, nil
}

// Merge combines layers into one map. Earlier layers take precedence.
func Merge(layers ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for i := len(layers) - 1; i >= 0; i-- {
		for k, v := range layers[i] {
			merged[k] = v
		}
	}
	return merged
}
