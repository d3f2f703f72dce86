package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/symcrypt/internal/commands"
	"github.com/idelchi/symcrypt/internal/config"
)

// execute runs the command tree once. The root command binds flags into the global viper
// instance, so the tests in this package run sequentially.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := commands.NewRootCommand(&config.Config{}, "test")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "encrypt ecb",
			args: []string{"encrypt", "--key", "3132333435363738", "--mode", "ECB", "abcdefg"},
			want: "SGy4uByszbc=\n",
		},
		{
			name: "decrypt ecb",
			args: []string{"decrypt", "--key", "3132333435363738", "--mode", "ECB", "SGy4uByszbc="},
			want: "abcdefg\n",
		},
		{
			name: "encrypt cbc",
			args: []string{
				"encrypt", "--key", "3132333435363738", "--iv", "3132333435363738", "hello world",
			},
			want: "CyqS6B+0nOGkMmaqyup7gQ==\n",
		},
		{
			name: "password encrypt",
			args: []string{"password", "encrypt", "--passphrase", "12345678", "hello world", ""},
			want: "CyqS6B+0nOGkMmaqyup7gQ==\n\n",
		},
		{
			name: "password decrypt",
			args: []string{"password", "decrypt", "--passphrase", "12345678", "CyqS6B+0nOGkMmaqyup7gQ=="},
			want: "hello world\n",
		},
		{
			name: "text encrypt",
			args: []string{"text", "encrypt", "--passphrase", "secret", "hello"},
			want: "oo+x77ayEsk=\n",
		},
		{
			name: "digest",
			args: []string{"digest", "password", ""},
			want: "W6ph5Mm5Pz8GgiULbPgzG37mj9g=\n2jmj7l5rSw0yVb/vlWAYkK/YBwk=\n",
		},
		{
			name: "digest sha256",
			args: []string{"digest", "--algorithm", "SHA-256", "password"},
			want: "XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg=\n",
		},
		{
			name: "digest windows-1252",
			args: []string{"digest", "--encoding", "cp1252", "café"},
			want: "0vUrxEBomPxyLAtOMU+bRvyFzeQ=\n",
		},
		{
			name: "digest unwrap",
			args: []string{"digest", "--unwrap", "AAECAw=="},
			want: "00010203\n",
		},
		{
			name: "encode",
			args: []string{"encode", "hello"},
			want: "aGVsbG8=\n",
		},
		{
			name: "decode",
			args: []string{"decode", "aGVsbG8="},
			want: "hello\n",
		},
		{
			name: "derive md5",
			args: []string{"derive", "--length", "8", "secret"},
			want: "5ebe2294ecd0e0f0\n",
		},
		{
			name: "derive pbkdf2",
			args: []string{"derive", "--salt", "salt", "--iterations", "1000", "password"},
			want: "632c2812e46d4604102ba7618e9d6d7d2f8128f6266b4a03\n",
		},
		{
			name: "derive from flag",
			args: []string{"derive", "--passphrase", "secret"},
			want: "5ebe2294ecd0e0f08eab7690d2a6ee695ebe2294ecd0e0f0\n",
		},
		{
			name: "profile",
			args: []string{
				"encrypt", "--key", "3132333435363738",
				"--profiles", filepath.Join("..", "profile", "testdata", "profiles.jsonc"),
				"--profile", "mailer",
				"abcdefg",
			},
			want: "SGy4uByszbc=\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no key", args: []string{"encrypt", "value"}},
		{name: "key and passphrase", args: []string{"encrypt", "--key", "3132333435363738", "--passphrase", "x", "v"}},
		{name: "short key", args: []string{"encrypt", "--key", "313233", "value"}},
		{name: "missing iv", args: []string{"encrypt", "--key", "3132333435363738", "value"}},
		{name: "bad mode", args: []string{"encrypt", "--key", "3132333435363738", "--mode", "XTS", "v"}},
		{name: "bad base64", args: []string{"decode", "!!"}},
		{name: "password wrong length", args: []string{"password", "encrypt", "--passphrase", "short", "v"}},
		{name: "password missing", args: []string{"password", "encrypt", "v"}},
		{name: "unknown profile", args: []string{
			"encrypt", "--key", "3132333435363738",
			"--profiles", filepath.Join("..", "profile", "testdata", "profiles.jsonc"),
			"--profile", "missing", "v",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "generate", "--length", "8", "--with-iv")
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 16)
	assert.Len(t, lines[1], 16)

	out, err = execute(t, "generate")
	require.NoError(t, err)
	assert.Len(t, bytes.TrimSpace([]byte(out)), 48)
}

func TestShowRedactsSecrets(t *testing.T) {
	out, err := execute(t, "encrypt", "--show", "--passphrase", "hunter22", "value")
	require.NoError(t, err)

	assert.NotContains(t, out, "hunter22")
	assert.Contains(t, out, "********")
	assert.Contains(t, out, "mode: CBC")
}

func TestFilesToOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")

	require.NoError(t, os.WriteFile(input, []byte("hello\n"), 0o600))

	out, err := execute(t, "encode", "--files", "--output", output, input)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=\n", string(data))
}

func TestEnvironment(t *testing.T) {
	t.Setenv("SYMCRYPT_PASSPHRASE", "12345678")

	out, err := execute(t, "password", "encrypt", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "CyqS6B+0nOGkMmaqyup7gQ==\n", out)
}

func TestDeriveHelpNamesPBKDF2Hash(t *testing.T) {
	derive := commands.NewDeriveCommand(&config.Config{})

	assert.Contains(t, derive.Long, "PBKDF2-HMAC-SHA256")
	assert.NotContains(t, derive.Long, "SHA1")
}
