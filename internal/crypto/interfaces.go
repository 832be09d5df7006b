package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account passwords into self-describing hash strings
// and verifies candidates against them. It knows nothing about users,
// storage or transport.
type PasswordHasher interface {
	// Hash derives an encoded hash for password with a fresh random salt.
	// The encoding carries every parameter needed to verify it later.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed or
	// unsupported encoding is an error; a mismatch is (false, nil).
	Verify(password, encodedHash string) (bool, error)
}
