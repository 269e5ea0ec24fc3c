/*
Package source loads the sectioned key/value data a mailing campaign is
described with. INI and YAML files are supported and several files can be
layered on top of each other.
*/
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/charmbracelet/log"
	"github.com/go-ini/ini"
	"gopkg.in/yaml.v3"
)

// Section is a flat key/value mapping; keys are case-sensitive
type Section map[string]string

// Sections maps section names to their data
type Sections map[string]Section

// Section returns the named section and whether it exists
func (s Sections) Section(name string) (Section, bool) {
	sec, ok := s[name]
	return sec, ok
}

// Load loads sections from a file, picking the format from its extension.
// .yaml and .yml files are read as YAML, anything else as INI.
func Load(path string) (Sections, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return LoadINI(path)
	}
}

// LoadFiles loads every file and layers them in order; a key defined in a
// later file replaces the same key of an earlier one.
func LoadFiles(paths ...string) (Sections, error) {
	result := make(Sections)
	for _, path := range paths {
		sections, err := Load(path)
		if err != nil {
			return nil, err
		}
		if err := Merge(result, sections); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", path, err)
		}
		log.Debug("Config source loaded", "path", path, "sections", len(sections))
	}
	return result, nil
}

// LoadINI loads sections from an INI file. Inline comments need a leading
// space ("a@b.com=A B   # note"), keys are separated from values by '=' only.
func LoadINI(path string) (Sections, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:       "=",
		SpaceBeforeInlineComment: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	result := make(Sections)
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		data := make(Section, len(sec.Keys()))
		for _, key := range sec.Keys() {
			data[key.Name()] = key.Value()
		}
		result[sec.Name()] = data
	}
	return result, nil
}

// LoadYAML loads sections from a YAML file holding a mapping of section
// names to string mappings:
//
//	general:
//	  From: rts@example.com
//	  Subject: Hello %_FN%!
//	recipients:
//	  jd@example.com: John Doe|ORG:-EFF
func LoadYAML(path string) (Sections, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	result := make(Sections)
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	for name, sec := range result {
		// an empty mapping ("recipients:") decodes to nil
		if sec == nil {
			result[name] = Section{}
		}
	}
	return result, nil
}

// Merge layers src over dst section by section. Keys only present in dst
// are kept, keys present in both take the value from src.
func Merge(dst, src Sections) error {
	for name, sec := range src {
		cur, ok := dst[name]
		if !ok {
			cur = make(Section, len(sec))
			dst[name] = cur
		}
		if err := mergo.Merge(&cur, sec, mergo.WithOverride); err != nil {
			return err
		}
	}
	return nil
}
