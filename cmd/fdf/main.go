package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-fixeddecimal"
	"github.com/goliatone/go-fixeddecimal/bridge"
)

type pathFlag struct {
	items []string
}

func (f *pathFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *pathFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fdf:", err)
		os.Exit(1)
	}
}

func run() error {
	locale := flag.String("locale", "en", "locale tag to format for")
	grouping := flag.String("grouping", "auto", "grouping strategy: auto, never, always, min2")
	var symbols pathFlag
	flag.Var(&symbols, "symbols", "symbol bundle files (yaml or json), comma separated")
	flag.Parse()

	values := flag.Args()
	if len(values) == 0 {
		return fmt.Errorf("no values to format")
	}

	strategy, err := fixeddecimal.ParseGroupingStrategy(*grouping)
	if err != nil {
		return err
	}

	opts := []fixeddecimal.Option{fixeddecimal.WithGrouping(strategy)}
	if len(symbols.items) > 0 {
		opts = append(opts, fixeddecimal.WithSymbolFiles(symbols.items...))
	}

	boundary := bridge.NewBoundary(opts...)
	res := boundary.CreateFormatter(*locale)
	if !res.IsOk() {
		return fmt.Errorf("create formatter for %q: %s", *locale, res.Code())
	}
	handle := res.Handle()
	defer boundary.DestroyFormatter(handle)

	for _, value := range values {
		out := boundary.FormatString(handle, value)
		if !out.IsOk() {
			return fmt.Errorf("format %q: %s", value, out.Code())
		}
		fmt.Println(out.Value())
	}
	return nil
}
