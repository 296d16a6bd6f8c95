package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfiguration(t *testing.T) {
	t.Run("caret form", func(t *testing.T) {
		cfg, err := ParseConfiguration("1s^2 2s^2 2p^5")
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.ElectronCount())
		assert.Equal(t, Odd, cfg.Parity())
		assert.Equal(t, "1s^2 2s^2 2p^5", cfg.String())
	})

	t.Run("superscript form matches caret form", func(t *testing.T) {
		sup, err := ParseConfiguration("1s² 2s² 2p⁵")
		require.NoError(t, err)
		caret, err := ParseConfiguration("1s^2 2s^2 2p^5")
		require.NoError(t, err)
		assert.Equal(t, caret, sup)
	})

	t.Run("bare shell means one electron", func(t *testing.T) {
		cfg, err := ParseConfiguration("1s^2 2s")
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.ElectronCount())
		assert.Equal(t, 1, cfg.Occupation(Shell{N: 2, L: 0}))
	})

	t.Run("shells come out sorted", func(t *testing.T) {
		cfg, err := ParseConfiguration("2p^6 1s^2 2s^2")
		require.NoError(t, err)
		assert.Equal(t, "1s^2 2s^2 2p^6", cfg.String())
	})

	t.Run("error cases", func(t *testing.T) {
		for name, input := range map[string]string{
			"empty":               "",
			"blank":               "   ",
			"garbage":             "x2p^3",
			"over pauli limit":    "2p^7",
			"duplicate shell":     "2p^3 2p^2",
			"l not less than n":   "1p^2",
			"unknown letter":      "2j^2",
			"zero occupation":     "2p^0",
			"missing shell label": "^3",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := ParseConfiguration(input)
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			})
		}
	})
}

func TestConfigurationRemoveElectron(t *testing.T) {
	ne := MustParseConfiguration("1s^2 2s^2 2p^6")

	got, ok := ne.RemoveElectron(Shell{N: 2, L: 1})
	require.True(t, ok)
	assert.Equal(t, "1s^2 2s^2 2p^5", got.String())
	assert.Equal(t, 9, got.ElectronCount())
	assert.Equal(t, "1s^2 2s^2 2p^6", ne.String(), "source untouched")

	_, ok = ne.RemoveElectron(Shell{N: 3, L: 0})
	assert.False(t, ok, "cannot remove from an absent shell")

	h, ok := MustParseConfiguration("1s").RemoveElectron(Shell{N: 1, L: 0})
	require.True(t, ok)
	assert.Equal(t, 0, h.ElectronCount(), "stripping the last electron leaves a bare ion")
}

func TestConfigurationDisplace(t *testing.T) {
	cfg := MustParseConfiguration("1s^2 2s^2 2p^5")

	got, ok := cfg.Displace(Shell{N: 2, L: 1}, Shell{N: 3, L: 0})
	require.True(t, ok)
	assert.Equal(t, "1s^2 2s^2 2p^4 3s^1", got.String())
	assert.Equal(t, cfg.ElectronCount(), got.ElectronCount())

	_, ok = cfg.Displace(Shell{N: 2, L: 1}, Shell{N: 1, L: 0})
	assert.False(t, ok, "destination is full")

	_, ok = cfg.Displace(Shell{N: 3, L: 2}, Shell{N: 3, L: 0})
	assert.False(t, ok, "source is empty")

	_, ok = cfg.Displace(Shell{N: 2, L: 1}, Shell{N: 2, L: 1})
	assert.False(t, ok, "source equals destination")
}

func TestMustParseConfigurationPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseConfiguration("nonsense") })
}

func TestParityValues(t *testing.T) {
	assert.Equal(t, "+", Even.String())
	assert.Equal(t, "-", Odd.String())
	assert.Equal(t, Even, MustParseConfiguration("1s^2 2s^2 2p^6").Parity())
	assert.Equal(t, Odd, MustParseConfiguration("1s^2 2p^1").Parity())
}
