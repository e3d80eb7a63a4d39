package words

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// record is the on-disk shape of a JSON or YAML word entry. The term and
// translation keys are accepted as aliases of english and chinese.
type record struct {
	English     string `json:"english" yaml:"english"`
	Chinese     string `json:"chinese" yaml:"chinese"`
	Term        string `json:"term" yaml:"term"`
	Translation string `json:"translation" yaml:"translation"`
}

func (r record) entry() Entry {
	term := r.English
	if term == "" {
		term = r.Term
	}
	translation := r.Chinese
	if translation == "" {
		translation = r.Translation
	}
	return Entry{
		Term:        strings.TrimSpace(term),
		Translation: strings.TrimSpace(translation),
	}
}

// Load reads entries from path. The parser is chosen by file extension:
// .json and .yaml/.yml hold a list of records, anything else is read as
// "term = translation" lines. Errors are logged and yield an empty result;
// callers apply the fallback through NewStore.
func Load(path string, log zerolog.Logger) []Entry {
	if path == "" {
		log.Info().Msg("no word source configured")
		return nil
	}

	entries, err := parseFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to load word source")
		return nil
	}

	log.Info().Str("path", path).Int("count", len(entries)).Msg("word source loaded")
	return entries
}

func parseFile(path string) ([]Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word source: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(content)
	case ".yaml", ".yml":
		return parseYAML(content)
	default:
		return parseLines(string(content)), nil
	}
}

func parseJSON(content []byte) ([]Entry, error) {
	var records []record
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON word source: %w", err)
	}
	return fromRecords(records), nil
}

func parseYAML(content []byte) ([]Entry, error) {
	var records []record
	if err := yaml.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("failed to parse YAML word source: %w", err)
	}
	return fromRecords(records), nil
}

func fromRecords(records []record) []Entry {
	var entries []Entry
	for _, r := range records {
		e := r.entry()
		if e.Term == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// parseLines reads the plain text format:
//   - "vacant = 空的" adds an entry
//   - blank lines, lines without '=' and lines with an empty side are skipped
func parseLines(content string) []Entry {
	var entries []Entry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || !strings.Contains(line, "=") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		term := strings.TrimSpace(parts[0])
		translation := strings.TrimSpace(parts[1])
		if term == "" || translation == "" {
			continue
		}

		entries = append(entries, Entry{Term: term, Translation: translation})
	}

	return entries
}
