package fixeddecimal

import (
	"fmt"
	"sort"
)

// SymbolsProvider exposes read only access to decimal symbol bundles.
type SymbolsProvider interface {
	// Symbols returns the bundle registered for the exact locale key and
	// ok=false if missing. Fallback is the caller's concern.
	Symbols(locale string) (Symbols, bool)
	// Locales returns the list of locales known to the provider.
	Locales() []string
}

// StaticProvider is an in memory provider, read only after construction.
type StaticProvider struct {
	bundles map[string]Symbols
	locales []string
}

var _ SymbolsProvider = (*StaticProvider)(nil)

// NewStaticProvider builds an immutable snapshot from the given bundles.
// Bundles are normalized and validated up front so lookups cannot fail later.
func NewStaticProvider(bundles map[string]Symbols) (*StaticProvider, error) {
	snapshot := make(map[string]Symbols, len(bundles))
	locales := make([]string, 0, len(bundles))

	for locale, symbols := range bundles {
		if locale == "" {
			return nil, fmt.Errorf("%w: empty locale key", ErrDataMissing)
		}
		if symbols.Locale == "" {
			symbols.Locale = locale
		}
		symbols = symbols.normalized()
		if err := symbols.validate(); err != nil {
			return nil, err
		}
		if len(symbols.Digits) > 0 {
			symbols.Digits = append([]rune(nil), symbols.Digits...)
		}
		snapshot[locale] = symbols
		locales = append(locales, locale)
	}

	// make locales deterministic
	sort.Strings(locales)

	return &StaticProvider{bundles: snapshot, locales: locales}, nil
}

// NewStaticProviderFromLoader drains a Loader into a StaticProvider.
func NewStaticProviderFromLoader(loader Loader) (*StaticProvider, error) {
	if loader == nil {
		return NewStaticProvider(nil)
	}
	bundles, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return NewStaticProvider(bundles)
}

// BuiltinProvider returns a provider over the staged CLDR bundles.
func BuiltinProvider() *StaticProvider {
	provider, err := NewStaticProvider(builtinSymbols)
	if err != nil {
		// staged data is validated at generation time
		panic(err)
	}
	return provider
}

// Symbols implements SymbolsProvider.
func (p *StaticProvider) Symbols(locale string) (Symbols, bool) {
	if p == nil {
		return Symbols{}, false
	}
	symbols, ok := p.bundles[locale]
	return symbols, ok
}

// Locales implements SymbolsProvider.
func (p *StaticProvider) Locales() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.locales...)
}

// resolveSymbols walks the locale fallback chain against a provider.
func resolveSymbols(provider SymbolsProvider, locale string) (Symbols, bool) {
	if provider == nil {
		return Symbols{}, false
	}
	for _, candidate := range localeChain(locale) {
		if symbols, ok := provider.Symbols(candidate); ok {
			return symbols, true
		}
	}
	return Symbols{}, false
}
