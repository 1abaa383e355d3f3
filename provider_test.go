package fixeddecimal

import (
	"errors"
	"testing"
)

func TestNewStaticProviderValidation(t *testing.T) {
	if _, err := NewStaticProvider(map[string]Symbols{
		"en": {Group: ","},
	}); !errors.Is(err, ErrDataMissing) {
		t.Fatalf("missing decimal separator err = %v, want ErrDataMissing", err)
	}

	if _, err := NewStaticProvider(map[string]Symbols{
		"en": {Decimal: ".", Group: ","},
	}); !errors.Is(err, ErrDataMissing) {
		t.Fatalf("missing primary size err = %v, want ErrDataMissing", err)
	}

	if _, err := NewStaticProvider(map[string]Symbols{
		"en": {Decimal: ".", Digits: []rune("012")},
	}); !errors.Is(err, ErrDataMissing) {
		t.Fatalf("short digits err = %v, want ErrDataMissing", err)
	}

	if _, err := NewStaticProvider(map[string]Symbols{
		"": {Decimal: "."},
	}); !errors.Is(err, ErrDataMissing) {
		t.Fatalf("empty locale err = %v, want ErrDataMissing", err)
	}
}

func TestStaticProviderNormalization(t *testing.T) {
	provider, err := NewStaticProvider(map[string]Symbols{
		"en": {Decimal: ".", Group: ",", Grouping: GroupingSizes{Primary: 3}},
	})
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}

	symbols, ok := provider.Symbols("en")
	if !ok {
		t.Fatal("expected en bundle")
	}
	if symbols.MinusSign != "-" || symbols.PlusSign != "+" {
		t.Fatalf("signs = %q/%q", symbols.MinusSign, symbols.PlusSign)
	}
	if symbols.Grouping.Secondary != 3 || symbols.Grouping.MinDigits != 1 {
		t.Fatalf("grouping = %+v", symbols.Grouping)
	}
	if symbols.Locale != "en" {
		t.Fatalf("locale = %q", symbols.Locale)
	}
}

func TestStaticProviderSnapshot(t *testing.T) {
	source := map[string]Symbols{
		"en": {Decimal: ".", Group: ",", Grouping: GroupingSizes{Primary: 3}},
	}
	provider, err := NewStaticProvider(source)
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}

	source["en"] = Symbols{Decimal: "!"}
	delete(source, "en")

	symbols, ok := provider.Symbols("en")
	if !ok || symbols.Decimal != "." {
		t.Fatalf("snapshot mutated: %+v ok=%v", symbols, ok)
	}
}

func TestStaticProviderLocalesSorted(t *testing.T) {
	provider, err := NewStaticProvider(map[string]Symbols{
		"fr": {Decimal: ","},
		"de": {Decimal: ","},
		"en": {Decimal: "."},
	})
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}

	expected := []string{"de", "en", "fr"}
	locales := provider.Locales()
	if len(locales) != len(expected) {
		t.Fatalf("Locales length = %d, want %d", len(locales), len(expected))
	}
	for i, locale := range expected {
		if locales[i] != locale {
			t.Fatalf("Locales[%d] = %q, want %q", i, locales[i], locale)
		}
	}
}

func TestResolveSymbols(t *testing.T) {
	provider, err := NewStaticProvider(map[string]Symbols{
		"en": {Decimal: ".", Group: ",", Grouping: GroupingSizes{Primary: 3}},
	})
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}

	if _, ok := resolveSymbols(provider, "en-AU"); !ok {
		t.Fatal("expected en-AU to fall back to en")
	}
	if _, ok := resolveSymbols(provider, "ja"); ok {
		t.Fatal("expected ja to miss")
	}
	if _, ok := resolveSymbols(nil, "en"); ok {
		t.Fatal("expected nil provider to miss")
	}
}

func TestBuiltinProviderCoversStagedLocales(t *testing.T) {
	provider := BuiltinProvider()
	for locale := range builtinSymbols {
		if _, ok := provider.Symbols(locale); !ok {
			t.Fatalf("builtin provider missing %q", locale)
		}
	}
}
