package fixeddecimal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader retrieves the symbol bundles used to seed a provider.
type Loader interface {
	Load() (map[string]Symbols, error)
}

// LoaderFunc adapters allow bare functions to implement Loader.
type LoaderFunc func() (map[string]Symbols, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (map[string]Symbols, error) {
	return fn()
}

// FileLoader reads symbol bundle files. Later paths override earlier ones on
// locale collisions.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load implements Loader.
func (l *FileLoader) Load() (map[string]Symbols, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("fixeddecimal: no loader paths configured")
	}

	bundles := make(map[string]Symbols)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("fixeddecimal: read %s: %w", path, err)
		}

		src, err := decodeSymbolsFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("fixeddecimal: decode %s: %w", path, err)
		}
		for locale, symbols := range src {
			bundles[locale] = symbols
		}
	}

	return bundles, nil
}

// symbolsPayload is the on disk shape of one bundle.
type symbolsPayload struct {
	Decimal   string          `json:"decimal" yaml:"decimal"`
	Group     string          `json:"group" yaml:"group"`
	MinusSign string          `json:"minus_sign" yaml:"minus_sign"`
	PlusSign  string          `json:"plus_sign" yaml:"plus_sign"`
	Grouping  groupingPayload `json:"grouping" yaml:"grouping"`
	Digits    string          `json:"digits" yaml:"digits"`
}

type groupingPayload struct {
	Primary   uint8 `json:"primary" yaml:"primary"`
	Secondary uint8 `json:"secondary" yaml:"secondary"`
	MinDigits uint8 `json:"min_digits" yaml:"min_digits"`
}

func decodeSymbolsFile(path string, data []byte) (map[string]Symbols, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw map[string]symbolsPayload
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	bundles := make(map[string]Symbols, len(raw))
	for locale, payload := range raw {
		if locale == "" {
			return nil, fmt.Errorf("empty locale in %s", path)
		}
		symbols := Symbols{
			Locale:    locale,
			Decimal:   payload.Decimal,
			Group:     payload.Group,
			MinusSign: payload.MinusSign,
			PlusSign:  payload.PlusSign,
			Grouping: GroupingSizes{
				Primary:   payload.Grouping.Primary,
				Secondary: payload.Grouping.Secondary,
				MinDigits: payload.Grouping.MinDigits,
			},
		}
		if payload.Digits != "" {
			symbols.Digits = []rune(payload.Digits)
		}
		bundles[locale] = symbols
	}
	return bundles, nil
}
