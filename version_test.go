package depositkit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	data := GetVersion()
	require.NotEmpty(t, data.Version)
	require.NotEmpty(t, data.GitRev)
	require.NotEmpty(t, data.GitBranch)
	require.NotEmpty(t, data.BuildDate)
	require.NotEmpty(t, data.GoVersion)
	require.NotEmpty(t, data.OS)
	require.NotEmpty(t, data.Arch)
}

func testVersion() FullVersion {
	return FullVersion{
		Version:   "v0.1.0",
		GitRev:    "4ebab70",
		GitBranch: "main",
		BuildDate: "Fri, 17 Jun 1988 01:58:00 +0200",
		GoVersion: "go1.24.2",
		OS:        "linux",
		Arch:      "amd64",
	}
}

func TestString(t *testing.T) {
	require.Equal(t, `depositkit
Version:      v0.1.0
Git revision: 4ebab70
Git branch:   main
Go version:   go1.24.2
Built:        Fri, 17 Jun 1988 01:58:00 +0200
OS/Arch:      linux/amd64
`, testVersion().String())
}

func TestBrief(t *testing.T) {
	require.Equal(t, "depositkit/v0.1.0 (4ebab70@main, go1.24.2 linux/amd64)", testVersion().Brief())
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	require.Equal(t, GetVersion().String(), buf.String())
}

func TestJSONMarshal(t *testing.T) {
	b, err := json.Marshal(testVersion())
	require.NoError(t, err)
	require.Equal(t, `{"version":"v0.1.0","git_revision":"4ebab70","git_branch":"main",`+
		`"build_date":"Fri, 17 Jun 1988 01:58:00 +0200","go_version":"go1.24.2","os":"linux","arch":"amd64"}`,
		string(b))
}
