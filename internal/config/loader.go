package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

var docValidator = validator.New()

// TableFiles names the four document files of one configuration source.
// Units may be empty; the other three are mandatory.
type TableFiles struct {
	Conversion string
	Prefix     string
	Aliases    string
	Units      string
}

// LoadStore loads a configuration source directory. Each table is looked up
// as <name>.json, <name>.yaml or <name>.yml, in that order.
func LoadStore(dir string) (*Store, error) {
	files := TableFiles{
		Conversion: findTableFile(dir, TableConversion),
		Prefix:     findTableFile(dir, TablePrefix),
		Aliases:    findTableFile(dir, TableAliases),
		Units:      findTableFile(dir, TableUnits),
	}
	if files.Conversion == "" {
		return nil, &MissingTableError{Table: TableConversion, Source: dir}
	}
	if files.Prefix == "" {
		return nil, &MissingTableError{Table: TablePrefix, Source: dir}
	}
	if files.Aliases == "" {
		return nil, &MissingTableError{Table: TableAliases, Source: dir}
	}
	return LoadStoreFiles(files)
}

// LoadStoreFiles loads a configuration source from explicit file paths.
func LoadStoreFiles(files TableFiles) (*Store, error) {
	var conversion ConversionDoc
	if err := decodeFile(files.Conversion, &conversion); err != nil {
		return nil, fmt.Errorf("conversion table: %w", err)
	}
	if err := validateConversion(conversion, files.Conversion); err != nil {
		return nil, err
	}

	var prefixes PrefixDoc
	if err := decodeFile(files.Prefix, &prefixes); err != nil {
		return nil, fmt.Errorf("prefix table: %w", err)
	}
	if err := validatePrefix(prefixes, files.Prefix); err != nil {
		return nil, err
	}
	if err := docValidator.Struct(prefixes); err != nil {
		return nil, fmt.Errorf("prefix table %s: %w", files.Prefix, err)
	}

	var aliases AliasDoc
	if err := decodeFile(files.Aliases, &aliases); err != nil {
		return nil, fmt.Errorf("alias table: %w", err)
	}
	if err := validateAliases(aliases, files.Aliases); err != nil {
		return nil, err
	}

	var units UnitsDoc
	if files.Units != "" {
		if err := decodeFile(files.Units, &units); err != nil {
			return nil, fmt.Errorf("units table: %w", err)
		}
	}

	return NewStore(conversion, prefixes, aliases, units)
}

// findTableFile returns the first existing file for a table name, or "".
func findTableFile(dir, name string) string {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// decodeFile unmarshals a JSON or YAML document by file extension.
func decodeFile(path string, out interface{}) error {
	if path == "" {
		return fmt.Errorf("no file path given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return nil
}
