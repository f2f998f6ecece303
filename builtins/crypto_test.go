package builtins

import (
	"testing"

	"skiff/types"
)

func cryptoCall(t *testing.T, name string, args ...types.Value) types.Value {
	t.Helper()
	m := cryptoModule()
	fnVal, ok := m.Get(types.NewStr(name))
	if !ok {
		t.Fatalf("crypto.%s not bound", name)
	}
	fn, err := types.AsFunc(fnVal)
	if err != nil {
		t.Fatalf("crypto.%s: %v", name, err)
	}
	out, err := fn.Native(nil, args)
	if err != nil {
		t.Fatalf("crypto.%s: %v", name, err)
	}
	return out
}

func TestCryptoSha256(t *testing.T) {
	got := cryptoCall(t, "sha256", types.NewStr("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if !got.Equal(types.NewStr(want)) {
		t.Errorf("sha256(abc) = %v, want %s", got, want)
	}
}

func TestCryptoBlake2b(t *testing.T) {
	got, err := types.AsStr(cryptoCall(t, "blake2b", types.NewStr("abc")))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Val) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(got.Val))
	}
	again, _ := types.AsStr(cryptoCall(t, "blake2b", types.NewStr("abc")))
	if got.Val != again.Val {
		t.Error("blake2b is not deterministic")
	}
	other, _ := types.AsStr(cryptoCall(t, "blake2b", types.NewStr("abd")))
	if got.Val == other.Val {
		t.Error("distinct inputs produced the same digest")
	}
}

func TestCryptoArgon2(t *testing.T) {
	key := cryptoCall(t, "argon2", types.NewStr("secret"), types.NewStr("salty"))
	s, err := types.AsStr(key)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Val) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(s.Val))
	}

	again := cryptoCall(t, "argon2", types.NewStr("secret"), types.NewStr("salty"))
	if !key.Equal(again) {
		t.Error("argon2 is not deterministic for identical inputs")
	}
	otherSalt := cryptoCall(t, "argon2", types.NewStr("secret"), types.NewStr("pepper"))
	if key.Equal(otherSalt) {
		t.Error("different salts produced the same key")
	}
}

func TestCryptoArgumentErrors(t *testing.T) {
	m := cryptoModule()
	fnVal, _ := m.Get(types.NewStr("sha256"))
	fn, err := types.AsFunc(fnVal)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := fn.Native(nil, nil); types.CodeOf(err) != types.ErrBadArgCount {
		t.Errorf("sha256() error = %v, want IncorrectNumberOfArgs", err)
	}
	if _, err := fn.Native(nil, []types.Value{types.NewNumber(1)}); types.CodeOf(err) != types.ErrNotAString {
		t.Errorf("sha256(1) error = %v, want NotAString", err)
	}
}
