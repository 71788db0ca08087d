package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriahrh/buyer-hash/adapters/hasher"
	"github.com/satriahrh/buyer-hash/config"
	"github.com/satriahrh/buyer-hash/domain"
)

const demoOutput = "hash_phone_number: 0x5c13738cc6d26788ae657687604d02083ae37a76a53cd8872937e202f97c74c7\n" +
	"hash_address: 0x24f5d10973f6bad9fd3b6a780e3853a94aee389b3fd0946deb363ee652a0d8a9\n"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HASHER_BACKEND", "")

	var out bytes.Buffer
	cmd := NewRootCmd(config.New())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"demo"},
		{"--backend", hasher.EthereumBackend},
		{"demo", "--backend", hasher.Keccak256Backend},
	} {
		out, err := run(t, args...)
		require.NoError(t, err, "args %v", args)
		assert.Equal(t, demoOutput, out, "args %v", args)
	}
}

func TestHashCommands(t *testing.T) {
	out, err := run(t, "phone", DemoPhoneNumber)
	require.NoError(t, err)
	assert.Equal(t, "0x5c13738cc6d26788ae657687604d02083ae37a76a53cd8872937e202f97c74c7\n", out)

	out, err = run(t, "address", DemoAddress)
	require.NoError(t, err)
	assert.Equal(t, "0x24f5d10973f6bad9fd3b6a780e3853a94aee389b3fd0946deb363ee652a0d8a9\n", out)

	out, err = run(t, "address", "")
	require.NoError(t, err)
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470\n", out)
}

func TestHashCommandArgs(t *testing.T) {
	_, err := run(t, "phone")
	require.Error(t, err)

	_, err = run(t, "address", "a", "b")
	require.Error(t, err)
}

func TestHashCommandRejectsInvalidUTF8(t *testing.T) {
	_, err := run(t, "phone", "\xff")
	require.ErrorIs(t, err, domain.ErrInvalidEncoding)
}

func TestUnknownBackend(t *testing.T) {
	_, err := run(t, "--backend", "sha3", "demo")
	require.ErrorIs(t, err, hasher.ErrUnknownBackend)
}

func TestBackendFromEnvironment(t *testing.T) {
	t.Setenv("HASHER_BACKEND", "bogus")

	cmd := NewRootCmd(config.New())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"demo"})
	require.ErrorIs(t, cmd.Execute(), hasher.ErrUnknownBackend)
}
