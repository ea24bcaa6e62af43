package wavbuf

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/afero"
)

const (
	// BitDepth is the only sample width the carrier supports.
	BitDepth = 16
	// FormatPCM is the WAVE_FORMAT_PCM tag.
	FormatPCM = 1
)

// Spec describes the layout of a container.
type Spec struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Mono16 returns the spec of a single-channel 16-bit container at rate.
func Mono16(rate int) Spec {
	return Spec{SampleRate: rate, Channels: 1, BitDepth: BitDepth}
}

// Buffer is an encoded WAV container held in memory.
type Buffer struct {
	data []byte
}

// New wraps data without copying it.
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Read loads a whole container from r.
func Read(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading container: %w", err)
	}

	return New(data), nil
}

// Bytes returns the encoded container.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the encoded size in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Clone returns a Buffer with its own copy of the bytes.
func (b *Buffer) Clone() *Buffer {
	return New(bytes.Clone(b.data))
}

// Reader returns a new seekable reader positioned at the start of the container.
func (b *Buffer) Reader() io.ReadSeeker {
	return bytes.NewReader(b.data)
}

// Spec reads the container header.
func (b *Buffer) Spec() (Spec, error) {
	decoder, err := b.decoder()
	if err != nil {
		return Spec{}, err
	}

	return Spec{
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
	}, nil
}

// Samples decodes every sample, interleaved across channels.
func (b *Buffer) Samples() ([]int16, error) {
	decoder, err := b.decoder()
	if err != nil {
		return nil, err
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: decoding samples: %w", ErrContainer, err)
	}

	samples := make([]int16, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = int16(v) //nolint:gosec // decoder produced 16-bit values
	}

	return samples, nil
}

// decoder opens the container and checks that it holds 16-bit PCM.
func (b *Buffer) decoder() (*wav.Decoder, error) {
	decoder := wav.NewDecoder(b.Reader())
	if !decoder.IsValidFile() {
		if err := decoder.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrContainer, err)
		}

		return nil, ErrContainer
	}

	if decoder.WavAudioFormat != FormatPCM || decoder.BitDepth != BitDepth {
		return nil, fmt.Errorf("%w: format %d, %d bits", ErrUnsupportedFormat, decoder.WavAudioFormat, decoder.BitDepth)
	}

	return decoder, nil
}

// FromSamples encodes samples into a new container with the given spec.
func FromSamples(samples []int16, spec Spec) (*Buffer, error) {
	if spec.BitDepth != BitDepth {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedFormat, spec.BitDepth)
	}

	if spec.Channels < 1 || spec.SampleRate < 1 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedFormat, spec.Channels, spec.SampleRate)
	}

	const name = "carrier.wav"

	fs := afero.NewMemMapFs()

	file, err := fs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating buffer: %w", err)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	encoder := wav.NewEncoder(file, spec.SampleRate, spec.BitDepth, spec.Channels, FormatPCM)

	pcm := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: spec.Channels, SampleRate: spec.SampleRate},
		Data:           data,
		SourceBitDepth: spec.BitDepth,
	}

	if err := encoder.Write(pcm); err != nil {
		return nil, fmt.Errorf("encoding samples: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("finalizing container: %w", err)
	}

	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("closing buffer: %w", err)
	}

	encoded, err := afero.ReadFile(fs, name)
	if err != nil {
		return nil, fmt.Errorf("reading buffer: %w", err)
	}

	return New(encoded), nil
}

// Sine test signal parameters.
const (
	SineRate      = 44100
	SineFrequency = 440.0
)

// SineSamples returns seconds of a full-scale 440 Hz mono sine at 44.1 kHz.
func SineSamples(seconds int) []int16 {
	samples := make([]int16, SineRate*max(seconds, 0))

	for i := range samples {
		t := float64(i) / SineRate
		samples[i] = int16(math.Sin(2*math.Pi*SineFrequency*t) * math.MaxInt16)
	}

	return samples
}

// Sine returns SineSamples encoded as a mono 16-bit container.
func Sine(seconds int) (*Buffer, error) {
	return FromSamples(SineSamples(seconds), Mono16(SineRate))
}
