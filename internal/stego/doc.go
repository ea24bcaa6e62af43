// Package stego hides a payload in the least-significant bits of 16-bit PCM samples
// and recovers it with the same passphrase.
//
// Embed seals the payload with the configured cipher, frames it, and writes one bit
// per sample in the order given by the passphrase's permutation. Extract recomputes
// that order, reads the bits back, decodes the frame and opens it. Extract never
// fails: a wrong passphrase or damaged carrier produces some bytes, and the returned
// encryption.Status says whether they were authenticated.
//
// Both calls are pure functions of their arguments. The permutation is rebuilt on
// every call and the input samples are never modified.
package stego
