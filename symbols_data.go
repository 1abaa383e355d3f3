// Staged CLDR decimal symbol bundles, maintained by hand until a generator
// lands. Values follow CLDR's symbols and grouping data for each locale.

package fixeddecimal

var builtinSymbols = map[string]Symbols{
	"en": {
		Locale:    "en",
		Decimal:   ".",
		Group:     ",",
		MinusSign: "-",
		PlusSign:  "+",
		Grouping:  GroupingSizes{Primary: 3, Secondary: 3, MinDigits: 1},
	},
	"en-IN": {
		Locale:    "en-IN",
		Decimal:   ".",
		Group:     ",",
		MinusSign: "-",
		PlusSign:  "+",
		Grouping:  GroupingSizes{Primary: 3, Secondary: 2, MinDigits: 1},
	},
	"es": {
		Locale:    "es",
		Decimal:   ",",
		Group:     ".",
		MinusSign: "-",
		PlusSign:  "+",
		Grouping:  GroupingSizes{Primary: 3, Secondary: 3, MinDigits: 2},
	},
	"de": {
		Locale:    "de",
		Decimal:   ",",
		Group:     ".",
		MinusSign: "-",
		PlusSign:  "+",
		Grouping:  GroupingSizes{Primary: 3, Secondary: 3, MinDigits: 1},
	},
	"fr": {
		Locale:    "fr",
		Decimal:   ",",
		Group:     "\u202f",
		MinusSign: "-",
		PlusSign:  "+",
		Grouping:  GroupingSizes{Primary: 3, Secondary: 3, MinDigits: 1},
	},
	"hi": {
		Locale:    "hi",
		Decimal:   ".",
		Group:     ",",
		MinusSign: "-",
		PlusSign:  "+",
		Grouping:  GroupingSizes{Primary: 3, Secondary: 2, MinDigits: 1},
	},
	"ar": {
		Locale:    "ar",
		Decimal:   "٫",
		Group:     "٬",
		MinusSign: "؜-",
		PlusSign:  "؜+",
		Grouping:  GroupingSizes{Primary: 3, Secondary: 3, MinDigits: 1},
		Digits:    []rune("٠١٢٣٤٥٦٧٨٩"),
	},
	"it": {
		Locale:    "it",
		Decimal:   ",",
		Group:     ".",
		MinusSign: "-",
		PlusSign:  "+",
		Grouping:  GroupingSizes{Primary: 3, Secondary: 3, MinDigits: 1},
	},
	"ja": {
		Locale:    "ja",
		Decimal:   ".",
		Group:     ",",
		MinusSign: "-",
		PlusSign:  "+",
		Grouping:  GroupingSizes{Primary: 3, Secondary: 3, MinDigits: 1},
	},
	"pt": {
		Locale:    "pt",
		Decimal:   ",",
		Group:     ".",
		MinusSign: "-",
		PlusSign:  "+",
		Grouping:  GroupingSizes{Primary: 3, Secondary: 3, MinDigits: 1},
	},
}
