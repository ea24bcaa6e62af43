// Package wavbuf exposes a WAV container as a flat sequence of signed 16-bit samples.
//
// A Buffer owns the encoded container bytes. Every read opens a fresh reader over
// them, so a Buffer can be read any number of times and cloned freely. Parsing and
// serialisation are delegated to go-audio/wav; this package only checks that the
// container carries 16-bit integer PCM.
package wavbuf
