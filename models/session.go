package models

// SessionRecord is the on-disk form of a saved client session.
//
// The token is stored encrypted with a key derived from the account password,
// so the file on its own grants no access. The salt is not a secret; it only
// makes the derived key unique per session.
type SessionRecord struct {
	// Email is the login identifier the session belongs to. Shown in the
	// unlock prompt so the user knows which account they are resuming.
	Email string `json:"email"`

	// Salt is the base64-encoded key-derivation salt.
	Salt string `json:"salt"`

	// EncryptedToken is the base64-encoded AES-GCM blob holding the
	// session JWT. Never store the token in the clear.
	EncryptedToken string `json:"encrypted_token"`
}
