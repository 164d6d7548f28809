package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
)

// readCatalog loads catalog entities from a .json or .yaml file.
func readCatalog(path string) ([]catalog.Entity, error) {
	var entities []catalog.Entity
	if err := decodeFile(path, &entities); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return entities, nil
}

// readProfiles loads profiles from a .json or .yaml file.
func readProfiles(path string) ([]profile.Profile, error) {
	var profiles []profile.Profile
	if err := decodeFile(path, &profiles); err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return profiles, nil
}

func decodeFile(path string, out any) error {
	if path == "" {
		return fmt.Errorf("file path is required")
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, out)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		return fmt.Errorf("%s: unsupported extension (want .json, .yaml or .yml)", path)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
