// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves API credentials from the environment, falling
// back to a directory of plain-text files. In the directory each file is one
// secret: the file name is the key and the trimmed contents are the value.
//
// Known keys: naver-maps-client-id, naver-maps-client-secret.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultDir is where secret files are looked up, relative to the working
// directory.
const DefaultDir = ".secrets"

// Credential names one secret: the environment variable checked first and
// the file key used as a fallback.
type Credential struct {
	Env  string
	File string
}

// Naver Maps geocoding credentials.
var (
	NaverClientID     = Credential{Env: "NAVER_MAPS_CLIENT_ID", File: "naver-maps-client-id"}
	NaverClientSecret = Credential{Env: "NAVER_MAPS_CLIENT_SECRET", File: "naver-maps-client-secret"}
)

// Load reads all files in dir and returns a map of file name to trimmed
// contents. A missing directory is not an error and yields an empty map.
// Unreadable files are logged and skipped.
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
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			zap.L().Warn("could not read secret", zap.String("key", name), zap.Error(err))
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Resolve returns the value for c. A non-blank environment variable wins;
// otherwise the loaded file value is used. It fails when neither is set.
func Resolve(c Credential, loaded map[string]string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(c.Env)); v != "" {
		return v, nil
	}
	if v := loaded[c.File]; v != "" {
		return v, nil
	}
	return "", fmt.Errorf("missing env: %s", c.Env)
}
