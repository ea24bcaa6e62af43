// Package encryption provides the transforms applied to a payload before it is framed
// and after it is recovered.
//
// A Cipher seals with an explicit error and opens without one: Open always returns
// bytes, reporting through Status whether they are the authenticated plaintext or one
// of the fallbacks (undecodable text, blob too short, failed authentication).
// Extraction with a wrong passphrase therefore yields plausible garbage rather than an
// error, and callers that need certainty inspect the Status.
//
// Implementations: None (identity), AESSIV (AES-256-SIV through tink), Custom (caller
// functions) and XChaCha (XChaCha20-Poly1305 keyed with Argon2id).
package encryption
