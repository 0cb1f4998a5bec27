package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService is the client-side cryptography layer behind the saved
// session. It knows nothing about the network or the server; its only job is
// to derive keys from the account password and protect the session token at
// rest.
//
// Scheme:
//
//	salt = GenerateSalt()                 (once, stored next to the session)
//	key  = DeriveKey(password, salt)      (in memory only, never persisted)
//	blob = EncryptToken(token, key)       (safe to write to disk)
type KeyChainService interface {
	// GenerateSalt generates a random salt (16 bytes / 128 bits).
	// The salt is not a secret and is stored in the session file in the
	// clear; it exists so that equal passwords derive different keys.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit encryption key from the account password
	// and salt via Argon2id. The key exists only in client memory and is
	// never written to disk or sent to the server.
	DeriveKey(password string, salt []byte) []byte

	// EncryptToken encrypts the session token with the derived key via
	// AES-GCM. The result (base64 of nonce + ciphertext) is safe to store
	// on disk; without the key it is indistinguishable from random noise.
	EncryptToken(token string, key []byte) (string, error)

	// DecryptToken decrypts a blob produced by EncryptToken.
	// Returns the original token, or an error if authentication fails
	// (e.g. wrong password, hence wrong key, or a corrupted file).
	DecryptToken(encryptedToken string, key []byte) (string, error)
}
