package keyed_test

import (
	"os"
	"strconv"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gostego/pkg/keyed"
)

// Vectors holds the golden values from testdata/vectors.yml.
// 64-bit values are quoted strings so they survive YAML integer handling.
type Vectors struct {
	Seeds []struct {
		Passphrase string `yaml:"passphrase"`
		Seed       string `yaml:"seed"`
	} `yaml:"seeds"`
	Streams []struct {
		Seed   string   `yaml:"seed"`
		Values []string `yaml:"values"`
	} `yaml:"streams"`
	Permutations []struct {
		Passphrase string `yaml:"passphrase"`
		N          int    `yaml:"n"`
		Order      []int  `yaml:"order"`
		Decoys     string `yaml:"decoys,omitempty"`
	} `yaml:"permutations"`
}

func loadVectors(t *testing.T) Vectors {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	require.NoError(t, err)

	var vectors Vectors
	require.NoError(t, yaml.Unmarshal(data, &vectors))

	return vectors
}

func parseUint(t *testing.T, s string) uint64 {
	t.Helper()

	v, err := strconv.ParseUint(s, 10, 64)
	require.NoError(t, err)

	return v
}

func TestSeed(t *testing.T) {
	t.Parallel()

	for _, tc := range loadVectors(t).Seeds {
		t.Run(strconv.Quote(tc.Passphrase), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, parseUint(t, tc.Seed), keyed.Seed(tc.Passphrase))
		})
	}
}

func TestRandStream(t *testing.T) {
	t.Parallel()

	for _, tc := range loadVectors(t).Streams {
		t.Run(tc.Seed, func(t *testing.T) {
			t.Parallel()

			r := keyed.NewRand(parseUint(t, tc.Seed))

			for i, want := range tc.Values {
				assert.Equal(t, parseUint(t, want), r.Uint64(), "value %d", i)
			}
		})
	}
}

func TestPermutationGolden(t *testing.T) {
	t.Parallel()

	for _, tc := range loadVectors(t).Permutations {
		t.Run(tc.Passphrase, func(t *testing.T) {
			t.Parallel()

			r := keyed.NewRand(keyed.Seed(tc.Passphrase))
			assert.Equal(t, tc.Order, keyed.Permute(r, tc.N))

			if tc.Decoys != "" {
				got := make([]byte, len(tc.Decoys))
				r.Fill(got)
				assert.Equal(t, tc.Decoys, string(got))
			}
		})
	}
}

func TestPermutationIsBijection(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 7, 100, 4096, 44100} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()

			order := keyed.Permutation(keyed.Seed("bijection"), n)
			require.Len(t, order, n)

			seen := make([]bool, n)
			for _, idx := range order {
				require.True(t, idx >= 0 && idx < n, "index %d out of range", idx)
				require.False(t, seen[idx], "index %d repeated", idx)
				seen[idx] = true
			}
		})
	}
}

func TestPermutationDeterministic(t *testing.T) {
	t.Parallel()

	seed := keyed.Seed("super_secret_passphrase")

	assert.Equal(t, keyed.Permutation(seed, 441000), keyed.Permutation(seed, 441000))
	assert.NotEqual(t,
		keyed.Permutation(seed, 1000),
		keyed.Permutation(keyed.Seed("wrong_keyzz"), 1000),
	)
}

func TestPermutationEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, keyed.Permutation(42, 0))
	assert.Equal(t, []int{0}, keyed.Permutation(42, 1))

	// Neither size consumes a draw.
	r := keyed.NewRand(42)
	keyed.Permute(r, 1)
	assert.Equal(t, keyed.NewRand(42).Uint64(), r.Uint64())
}

func TestIntNRange(t *testing.T) {
	t.Parallel()

	r := keyed.NewRand(7)

	for _, n := range []int{1, 2, 3, 95, 1 << 20} {
		for range 1000 {
			v := r.IntN(n)
			require.True(t, v >= 0 && v < n, "IntN(%d) = %d", n, v)
		}
	}

	assert.Panics(t, func() { r.IntN(0) })
}

func TestPrintable(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 4096)
	keyed.NewRand(keyed.Seed("printable")).Fill(buf)

	for _, b := range buf {
		require.True(t, b >= 32 && b <= 126, "byte %d outside printable range", b)
	}
}
