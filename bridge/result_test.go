package bridge

import (
	"errors"
	"testing"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestResultDiscriminantExclusivity(t *testing.T) {
	ok := Ok("formatted")
	if !ok.IsOk() {
		t.Fatal("Ok result reports failure")
	}
	if ok.Value() != "formatted" {
		t.Fatalf("Value = %q", ok.Value())
	}
	expectPanic(t, "Code on success", func() { ok.Code() })

	fail := Err[string](CodeDataMissing)
	if fail.IsOk() {
		t.Fatal("Err result reports success")
	}
	if fail.Code() != CodeDataMissing {
		t.Fatalf("Code = %s", fail.Code())
	}
	expectPanic(t, "Value on failure", func() { fail.Value() })
}

func TestResultZeroValueIsFailure(t *testing.T) {
	var r Result[Handle]
	if r.IsOk() {
		t.Fatal("zero Result reports success")
	}
	if r.Code() != CodeUnknown {
		t.Fatalf("zero Result code = %s", r.Code())
	}
}

func TestResultUnpack(t *testing.T) {
	value, code, ok := Ok(42).Unpack()
	if !ok || value != 42 || code != CodeUnknown {
		t.Fatalf("Unpack = %v, %s, %v", value, code, ok)
	}

	_, code, ok = Err[int](CodeOutOfRange).Unpack()
	if ok || code != CodeOutOfRange {
		t.Fatalf("Unpack failure = %s, %v", code, ok)
	}
}

func TestResultErr(t *testing.T) {
	if err := Ok(1).Err(); err != nil {
		t.Fatalf("Err on success = %v", err)
	}

	err := Err[int](CodeLocaleUndefined).Err()
	var codeErr *CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != CodeLocaleUndefined {
		t.Fatalf("Err on failure = %v", err)
	}
}

func TestCodeString(t *testing.T) {
	cases := map[Code]string{
		CodeUnknown:         "unknown",
		CodeDataMissing:     "data_missing",
		CodeLocaleUndefined: "locale_undefined",
		CodeInvalidSyntax:   "invalid_syntax",
		CodeOutOfRange:      "out_of_range",
		CodeUnsupported:     "unsupported",
		Code(77):            "code(77)",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("Code(%d).String() = %q, want %q", uint32(code), got, want)
		}
	}
}
