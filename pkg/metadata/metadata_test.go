package metadata

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ajxudir/workspaces/pkg/cmdexec"
	"github.com/ajxudir/workspaces/pkg/errors"
	"github.com/ajxudir/workspaces/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRun replaces cmdexec.Run for the duration of the test.
func stubRun(t *testing.T, fn cmdexec.RunFunc) {
	t.Helper()
	original := cmdexec.Run
	cmdexec.Run = fn
	t.Cleanup(func() { cmdexec.Run = original })
}

// TestParse tests decoding of a cargo metadata document.
//
// It verifies:
//   - Root, members and package records are decoded
//   - publish null stays nil, publish [] is a non-nil empty slice
//   - Freeform metadata is kept raw
//   - Declared-but-missing members are kept in WorkspaceMembers
func TestParse(t *testing.T) {
	ws := testutil.NewWorkspace("/ws").Add(
		testutil.NewPackage("a").WithVersion("1.0.0"),
		testutil.NewPackage("b").WithVersion("0.9.0-beta.1").InDir("crates/b").Private().Independent(),
		testutil.NewPackage("c").InDir("crates/c").PublishTo("my-registry"),
		testutil.NewPackage("ghost").Missing(),
	)

	md, err := Parse(ws.JSON())
	require.NoError(t, err)

	assert.Equal(t, "/ws", md.WorkspaceRoot)
	assert.Len(t, md.WorkspaceMembers, 4)
	require.Len(t, md.Packages, 3)

	a := md.Packages[0]
	assert.Equal(t, PackageID("path+file:///ws#a@1.0.0"), a.ID)
	assert.Equal(t, "1.0.0", a.Version.String())
	assert.Equal(t, "/ws/Cargo.toml", a.ManifestPath)
	assert.Nil(t, a.Publish)

	b := md.Packages[1]
	assert.Equal(t, "0.9.0-beta.1", b.Version.String())
	require.NotNil(t, b.Publish)
	assert.Empty(t, *b.Publish)
	assert.JSONEq(t, `{"workspaces":{"independent":true}}`, string(b.Metadata))

	c := md.Packages[2]
	assert.Equal(t, []string{"my-registry"}, *c.Publish)
}

// TestParseErrors tests rejected documents.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "invalid json", input: `{"packages":`, wantErr: "invalid metadata JSON"},
		{name: "wrong shape", input: `[]`, wantErr: "invalid metadata JSON"},
		{name: "no root", input: `{"packages":[],"workspace_members":[]}`, wantErr: "no workspace_root"},
		{
			name:    "bad version",
			input:   `{"packages":[{"id":"x#x@one","name":"x","version":"one","manifest_path":"/ws/Cargo.toml"}],"workspace_members":["x#x@one"],"workspace_root":"/ws"}`,
			wantErr: "package x#x@one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestRead tests decoding from a reader.
func TestRead(t *testing.T) {
	md, err := Read(strings.NewReader(string(testutil.NewWorkspace("/r").Add(testutil.NewPackage("a")).JSON())))
	require.NoError(t, err)
	assert.Equal(t, "/r", md.WorkspaceRoot)
}

// TestIndex tests identity lookup, including duplicate ids.
func TestIndex(t *testing.T) {
	md := &Metadata{
		Packages: []Package{
			{ID: "a", Name: "first"},
			{ID: "b", Name: "b"},
			{ID: "a", Name: "second"},
		},
	}

	index := md.Index()
	assert.Len(t, index, 2)
	assert.Equal(t, "first", index["a"].Name)
	assert.Same(t, &md.Packages[1], index["b"])
	_, ok := index["missing"]
	assert.False(t, ok)
}

// TestCargoCommand tests the cargo invocation.
func TestCargoCommand(t *testing.T) {
	cmd := CargoCommand(LoadOptions{Dir: "/ws", Timeout: time.Second})
	assert.Equal(t, "cargo", cmd.Name)
	assert.Equal(t, []string{"metadata", "--format-version", "1", "--no-deps"}, cmd.Args)
	assert.Equal(t, "/ws", cmd.Dir)
	assert.Equal(t, time.Second, cmd.Timeout)

	cmd = CargoCommand(LoadOptions{Cargo: "/opt/cargo", ManifestPath: "/ws/Cargo.toml"})
	assert.Equal(t, "/opt/cargo", cmd.Name)
	assert.Equal(t, []string{"metadata", "--format-version", "1", "--no-deps", "--manifest-path", "/ws/Cargo.toml"}, cmd.Args)
}

// TestLoadFromCargo tests loading through the (stubbed) cargo command.
func TestLoadFromCargo(t *testing.T) {
	doc := testutil.NewWorkspace("/ws").Add(testutil.NewPackage("a")).JSON()

	var got cmdexec.Command
	stubRun(t, func(ctx context.Context, c cmdexec.Command) ([]byte, error) {
		got = c
		return doc, nil
	})

	md, err := Load(context.Background(), LoadOptions{Dir: "/ws", ManifestPath: "/ws/Cargo.toml"})
	require.NoError(t, err)
	assert.Equal(t, "/ws", md.WorkspaceRoot)
	assert.Equal(t, "cargo", got.Name)
	assert.Contains(t, got.Args, "--manifest-path")
}

// TestLoadCargoFailure tests that cargo failures become MetadataErrors.
func TestLoadCargoFailure(t *testing.T) {
	cause := stderrors.New("exit status 101")
	stubRun(t, func(ctx context.Context, c cmdexec.Command) ([]byte, error) {
		return nil, cause
	})

	_, err := Load(context.Background(), LoadOptions{})
	require.Error(t, err)

	me, ok := errors.IsMetadataError(err)
	require.True(t, ok)
	assert.Equal(t, "cargo metadata --format-version 1 --no-deps", me.Source)
	assert.ErrorIs(t, err, cause)
}

// TestLoadFromFile tests loading a saved document.
func TestLoadFromFile(t *testing.T) {
	stubRun(t, func(ctx context.Context, c cmdexec.Command) ([]byte, error) {
		t.Fatal("cargo must not run when a file is given")
		return nil, nil
	})

	p := testutil.NewWorkspace("/ws").Add(testutil.NewPackage("a")).WriteFile(t, t.TempDir())
	md, err := Load(context.Background(), LoadOptions{File: p})
	require.NoError(t, err)
	assert.Len(t, md.Packages, 1)

	_, err = Load(context.Background(), LoadOptions{File: filepath.Join(t.TempDir(), "nope.json")})
	me, ok := errors.IsMetadataError(err)
	require.True(t, ok)
	assert.True(t, stderrors.Is(me, os.ErrNotExist))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(context.Background(), LoadOptions{File: bad})
	assert.Contains(t, err.Error(), "invalid metadata JSON")
}

// TestLoadFromStdin tests the "-" file.
func TestLoadFromStdin(t *testing.T) {
	doc := testutil.NewWorkspace("/in").Add(testutil.NewPackage("a")).JSON()

	md, err := Load(context.Background(), LoadOptions{File: StdinFile, Stdin: strings.NewReader(string(doc))})
	require.NoError(t, err)
	assert.Equal(t, "/in", md.WorkspaceRoot)

	_, err = Load(context.Background(), LoadOptions{File: StdinFile, Stdin: strings.NewReader("")})
	me, ok := errors.IsMetadataError(err)
	require.True(t, ok)
	assert.Equal(t, "stdin", me.Source)
}
