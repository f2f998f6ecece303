package builtins

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"

	"skiff/types"
)

// cryptoModule builds the `crypto` module map of hashing functions.
// All of them take and return strings; digests come back hex-encoded.
func cryptoModule() *types.Map {
	m := types.NewMap()

	moduleFunc(m, "crypto", "sha256", cryptoSha256)
	moduleFunc(m, "crypto", "blake2b", cryptoBlake2b)
	moduleFunc(m, "crypto", "argon2", cryptoArgon2)

	return m
}

// crypto.sha256(str) -> hex digest string
func cryptoSha256(interp types.Interp, args []types.Value) (types.Value, error) {
	s, err := oneString(args)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256([]byte(s))
	return types.NewStr(hex.EncodeToString(sum[:])), nil
}

// crypto.blake2b(str) -> hex digest string (BLAKE2b-256)
func cryptoBlake2b(interp types.Interp, args []types.Value) (types.Value, error) {
	s, err := oneString(args)
	if err != nil {
		return nil, err
	}
	sum := blake2b.Sum256([]byte(s))
	return types.NewStr(hex.EncodeToString(sum[:])), nil
}

// crypto.argon2(password, salt) -> hex key string
// Argon2id with moderate interactive parameters and a 32-byte key.
func cryptoArgon2(interp types.Interp, args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, types.NewError(types.ErrBadArgCount)
	}
	password, err := types.AsStr(args[0])
	if err != nil {
		return nil, err
	}
	salt, err := types.AsStr(args[1])
	if err != nil {
		return nil, err
	}
	key := argon2.IDKey([]byte(password.Val), []byte(salt.Val), 1, 64*1024, 4, 32)
	return types.NewStr(hex.EncodeToString(key)), nil
}

// oneString narrows a single-argument call to its string payload
func oneString(args []types.Value) (string, error) {
	if len(args) != 1 {
		return "", types.NewError(types.ErrBadArgCount)
	}
	s, err := types.AsStr(args[0])
	if err != nil {
		return "", err
	}
	return s.Val, nil
}
