package bridge

import (
	"errors"
	"sync"
	"testing"

	"github.com/goliatone/go-fixeddecimal"
)

func TestCreateFormatterSuccess(t *testing.T) {
	boundary := NewBoundary()

	res := boundary.CreateFormatter("en")
	if !res.IsOk() {
		t.Fatalf("CreateFormatter(en) failed: %s", res.Code())
	}
	if boundary.Live() != 1 {
		t.Fatalf("Live = %d, want 1", boundary.Live())
	}

	h := res.Handle()
	out := boundary.FormatDecimal(h, fixeddecimal.FromInt64(1234567))
	if !out.IsOk() {
		t.Fatalf("FormatDecimal failed: %s", out.Code())
	}
	if out.Value() != "1,234,567" {
		t.Fatalf("FormatDecimal = %q", out.Value())
	}

	if !boundary.DestroyFormatter(h) {
		t.Fatal("DestroyFormatter reported failure")
	}
	if boundary.Live() != 0 {
		t.Fatalf("Live after destroy = %d, want 0", boundary.Live())
	}
}

func TestCreateFormatterFailure(t *testing.T) {
	boundary := NewBoundary()

	res := boundary.CreateFormatter("not a locale!!")
	if res.IsOk() {
		t.Fatal("expected failure for malformed tag")
	}
	if res.Code() != CodeLocaleUndefined {
		t.Fatalf("Code = %s, want locale_undefined", res.Code())
	}

	res = boundary.CreateFormatter("zz")
	if res.IsOk() {
		t.Fatal("expected failure for uncovered locale")
	}
	if res.Code() != CodeDataMissing {
		t.Fatalf("Code = %s, want data_missing", res.Code())
	}

	if boundary.Live() != 0 {
		t.Fatalf("Live after failures = %d, want 0", boundary.Live())
	}
}

func TestNoLeakOnRepeatedFailure(t *testing.T) {
	boundary := NewBoundary()

	for i := 0; i < 10000; i++ {
		if res := boundary.CreateFormatter("zz"); res.IsOk() {
			t.Fatal("unexpected success")
		}
	}
	if boundary.Live() != 0 {
		t.Fatalf("Live after 10000 failures = %d, want 0", boundary.Live())
	}
}

func TestUseAfterDestroy(t *testing.T) {
	boundary := NewBoundary()

	res := boundary.CreateFormatter("en")
	if !res.IsOk() {
		t.Fatalf("CreateFormatter failed: %s", res.Code())
	}
	h := res.Handle()

	if !boundary.DestroyFormatter(h) {
		t.Fatal("destroy failed")
	}
	if boundary.DestroyFormatter(h) {
		t.Fatal("double destroy went undetected")
	}

	out := boundary.FormatDecimal(h, fixeddecimal.FromInt64(1))
	if out.IsOk() || out.Code() != CodeUnknown {
		t.Fatalf("stale format = %+v", out)
	}
}

func TestFormatStringSyntaxFault(t *testing.T) {
	boundary := NewBoundary()

	res := boundary.CreateFormatter("de")
	if !res.IsOk() {
		t.Fatalf("CreateFormatter failed: %s", res.Code())
	}
	h := res.Handle()
	defer boundary.DestroyFormatter(h)

	out := boundary.FormatString(h, "12..5")
	if out.IsOk() || out.Code() != CodeInvalidSyntax {
		t.Fatalf("FormatString(12..5) = %+v", out)
	}

	out = boundary.FormatString(h, "1234567.89")
	if !out.IsOk() || out.Value() != "1.234.567,89" {
		t.Fatalf("FormatString = %+v", out)
	}
}

func TestConcurrentCreate(t *testing.T) {
	const callers = 32
	const perCaller = 16

	boundary := NewBoundary()
	handles := make(chan Handle, callers*perCaller)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perCaller; j++ {
				res := boundary.CreateFormatter("en")
				if !res.IsOk() {
					t.Errorf("concurrent create failed: %s", res.Code())
					return
				}
				handles <- res.Handle()
			}
		}()
	}
	wg.Wait()
	close(handles)

	seen := make(map[Handle]struct{}, callers*perCaller)
	for h := range handles {
		if _, dup := seen[h]; dup {
			t.Fatalf("aliased handle %#x", uint64(h))
		}
		seen[h] = struct{}{}
	}
	if len(seen) != callers*perCaller {
		t.Fatalf("handles = %d, want %d", len(seen), callers*perCaller)
	}
	if boundary.Live() != callers*perCaller {
		t.Fatalf("Live = %d, want %d", boundary.Live(), callers*perCaller)
	}

	for h := range seen {
		if !boundary.DestroyFormatter(h) {
			t.Fatalf("destroy %#x failed", uint64(h))
		}
	}
	if boundary.Live() != 0 {
		t.Fatalf("Live after teardown = %d, want 0", boundary.Live())
	}
}

func TestOwnFormatter(t *testing.T) {
	boundary := NewBoundary()

	owned, err := boundary.OwnFormatter("en")
	if err != nil {
		t.Fatalf("OwnFormatter: %v", err)
	}
	if boundary.Live() != 1 {
		t.Fatalf("Live = %d, want 1", boundary.Live())
	}

	out := owned.Format(fixeddecimal.FromInt64(1234))
	if !out.IsOk() || out.Value() != "1,234" {
		t.Fatalf("owned Format = %+v", out)
	}

	if err := owned.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := owned.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if boundary.Live() != 0 {
		t.Fatalf("Live after Close = %d, want 0", boundary.Live())
	}
}

func TestOwnFormatterFailure(t *testing.T) {
	boundary := NewBoundary()

	_, err := boundary.OwnFormatter("zz")
	var codeErr *CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != CodeDataMissing {
		t.Fatalf("OwnFormatter(zz) err = %v", err)
	}
	if boundary.Live() != 0 {
		t.Fatalf("Live = %d, want 0", boundary.Live())
	}
}

func TestBoundaryBaseOptions(t *testing.T) {
	provider, err := fixeddecimal.NewStaticProvider(map[string]fixeddecimal.Symbols{
		"tlh": {Decimal: ".", Group: ",", Grouping: fixeddecimal.GroupingSizes{Primary: 3}},
	})
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}

	boundary := NewBoundary(fixeddecimal.WithProvider(provider))

	res := boundary.CreateFormatter("tlh")
	if !res.IsOk() {
		t.Fatalf("CreateFormatter(tlh) failed: %s", res.Code())
	}
	defer boundary.DestroyFormatter(res.Handle())

	if r := boundary.CreateFormatter("en"); r.IsOk() {
		t.Fatal("base provider should not cover en")
	}

	// per-call options layer over the base ones
	never := boundary.CreateFormatter("tlh", fixeddecimal.WithGrouping(fixeddecimal.GroupingNever))
	if !never.IsOk() {
		t.Fatalf("CreateFormatter with option failed: %s", never.Code())
	}
	defer boundary.DestroyFormatter(never.Handle())

	out := boundary.FormatDecimal(never.Handle(), fixeddecimal.FromInt64(1234567))
	if !out.IsOk() || out.Value() != "1234567" {
		t.Fatalf("ungrouped format = %+v", out)
	}
}

func TestCodeForError(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{fixeddecimal.ErrDataMissing, CodeDataMissing},
		{fixeddecimal.ErrLocaleUndefined, CodeLocaleUndefined},
		{fixeddecimal.ErrInvalidSyntax, CodeInvalidSyntax},
		{fixeddecimal.ErrOutOfRange, CodeOutOfRange},
		{fixeddecimal.ErrUnsupported, CodeUnsupported},
		{errors.New("boom"), CodeUnknown},
	}

	for _, tc := range cases {
		if got := CodeForError(tc.err); got != tc.want {
			t.Fatalf("CodeForError(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}
