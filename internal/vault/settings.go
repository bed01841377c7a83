package vault

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/yaml.v3"

	"github.com/vaultmd/vaultd/internal/utils"
)

// DefaultDailyNoteLocation is the strftime-style location template used
// when the vault settings don't configure one.
const DefaultDailyNoteLocation = "daily/{now:%Y}/{now:%Y-%m-%d}.md"

var defaultSearchExtensions = []string{".md", ".markdown", ".txt"}

// Settings are the per-vault options read from .vaultd/vault.yaml. A
// missing file yields the defaults; a present file overrides only the
// sections it sets.
type Settings struct {
	DailyNote DailyNoteSettings `yaml:"daily_note"`
	Search    SearchSettings    `yaml:"search"`
}

type DailyNoteSettings struct {
	// Location is a path template with {now:%...} date fields,
	// e.g. "daily/{now:%Y}/{now:%Y-%m-%d}.md".
	Location string `yaml:"location"`

	// Template is a vault-relative file rendered into new daily notes.
	// Empty means new notes start blank.
	Template string `yaml:"template"`
}

type SearchSettings struct {
	// Extensions is the set of file extensions content search looks at.
	Extensions mapset.Set[string] `yaml:"extensions"`

	// Include widens content search to paths matching these glob
	// patterns regardless of extension.
	Include []string `yaml:"include"`
}

func (s *SearchSettings) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Extensions []string `yaml:"extensions"`
		Include    []string `yaml:"include"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	s.Extensions = mapset.NewSet[string]()
	for _, ext := range raw.Extensions {
		s.Extensions.Add(normalizeExt(ext))
	}
	s.Include = raw.Include

	return nil
}

func (s SearchSettings) MarshalYAML() (interface{}, error) {
	m := map[string]interface{}{}
	if s.Extensions != nil {
		m["extensions"] = s.Extensions.ToSlice()
	}
	if len(s.Include) > 0 {
		m["include"] = s.Include
	}
	return m, nil
}

func DefaultSettings() *Settings {
	return &Settings{
		DailyNote: DailyNoteSettings{
			Location: DefaultDailyNoteLocation,
		},
		Search: SearchSettings{
			Extensions: mapset.NewSet(defaultSearchExtensions...),
		},
	}
}

// LoadSettings reads vault settings from path, falling back to defaults
// for a missing file or any unset section. Include patterns are
// validated here so a broken glob fails at startup, not per request.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if !utils.FileExists(path) {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if settings.DailyNote.Location == "" {
		settings.DailyNote.Location = DefaultDailyNoteLocation
	}
	if settings.Search.Extensions == nil || settings.Search.Extensions.IsEmpty() {
		settings.Search.Extensions = mapset.NewSet(defaultSearchExtensions...)
	}

	for _, pattern := range settings.Search.Include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("parse %s: invalid include pattern %q", path, pattern)
		}
	}

	return settings, nil
}

// IsSearchable reports whether content search should read the file at
// the given vault-relative path.
func (s *Settings) IsSearchable(relPath string) bool {
	if s.Search.Extensions != nil && s.Search.Extensions.Contains(normalizeExt(path.Ext(relPath))) {
		return true
	}
	for _, pattern := range s.Search.Include {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
