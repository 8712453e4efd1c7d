package admin

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"blogpost/app/repositories"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCommands(t *testing.T, input string) (*Commands, *bytes.Buffer) {
	dir := t.TempDir()
	out := &bytes.Buffer{}
	return &Commands{
		DBPath:    filepath.Join(dir, "badger"),
		BackupDir: filepath.Join(dir, "backups"),
		Log:       zerolog.Nop(),
		In:        strings.NewReader(input),
		Out:       out,
		Now:       func() time.Time { return time.Unix(1700000000, 0) },
	}, out
}

func countPosts(t *testing.T, path string) int {
	db, err := repositories.OpenBadger(path, nil)
	require.NoError(t, err)
	defer db.Close()
	n, err := repositories.NewBadgerBlogPostRepository(db).Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestRunUsage(t *testing.T) {
	ctx := context.Background()

	t.Run("no args", func(t *testing.T) {
		c, out := setupCommands(t, "")
		assert.ErrorIs(t, c.Run(ctx, nil), ErrUsage)
		assert.Contains(t, out.String(), "Usage: blogpost db <command>")
	})

	t.Run("help", func(t *testing.T) {
		c, out := setupCommands(t, "")
		assert.NoError(t, c.Run(ctx, []string{"help"}))
		for _, cmd := range []string{"init", "clean", "backup", "restore", "seed"} {
			assert.Contains(t, out.String(), cmd)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		c, out := setupCommands(t, "")
		assert.ErrorIs(t, c.Run(ctx, []string{"explode"}), ErrUsage)
		assert.Contains(t, out.String(), "Unknown db command: explode")
	})

	t.Run("restore without file", func(t *testing.T) {
		c, _ := setupCommands(t, "")
		assert.ErrorIs(t, c.Run(ctx, []string{"restore"}), ErrUsage)
	})

	t.Run("bad seed count", func(t *testing.T) {
		c, _ := setupCommands(t, "")
		assert.ErrorIs(t, c.Run(ctx, []string{"seed", "lots"}), ErrUsage)
		assert.ErrorIs(t, c.Run(ctx, []string{"seed", "0"}), ErrUsage)
	})
}

func TestInitAndSeed(t *testing.T) {
	ctx := context.Background()
	c, out := setupCommands(t, "")

	require.NoError(t, c.Run(ctx, []string{"init"}))
	assert.Contains(t, out.String(), "Database initialized successfully")

	require.NoError(t, c.Run(ctx, []string{"init"}))
	assert.Contains(t, out.String(), "Database already exists")

	require.NoError(t, c.Run(ctx, []string{"seed"}))
	require.NoError(t, c.Run(ctx, []string{"seed", "3"}))
	assert.Contains(t, out.String(), "Inserted 3 blog posts (13 total)")
	assert.Equal(t, 13, countPosts(t, c.DBPath))
}

func TestClean(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing to clean", func(t *testing.T) {
		c, out := setupCommands(t, "")
		require.NoError(t, c.Run(ctx, []string{"clean"}))
		assert.Contains(t, out.String(), "already clean")
	})

	t.Run("declined", func(t *testing.T) {
		c, out := setupCommands(t, "n\n")
		require.NoError(t, c.Run(ctx, []string{"init"}))
		require.NoError(t, c.Run(ctx, []string{"clean"}))
		assert.Contains(t, out.String(), "Operation cancelled")
		assert.DirExists(t, c.DBPath)
	})

	t.Run("confirmed", func(t *testing.T) {
		c, out := setupCommands(t, "y\n")
		require.NoError(t, c.Run(ctx, []string{"init"}))
		require.NoError(t, c.Run(ctx, []string{"clean"}))
		assert.Contains(t, out.String(), "Database cleaned successfully")
		assert.NoDirExists(t, c.DBPath)
	})

	t.Run("yes flag", func(t *testing.T) {
		c, _ := setupCommands(t, "")
		require.NoError(t, c.Run(ctx, []string{"init"}))
		require.NoError(t, c.Run(ctx, []string{"clean", "--yes"}))
		assert.NoDirExists(t, c.DBPath)
	})
}

func TestBackupAndRestore(t *testing.T) {
	ctx := context.Background()
	c, out := setupCommands(t, "")

	require.NoError(t, c.Run(ctx, []string{"seed", "4"}))

	backupFile, err := c.backup()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(c.BackupDir, "backup_1700000000.db"), backupFile)
	assert.FileExists(t, backupFile)
	assert.Contains(t, out.String(), "Database backed up successfully")

	require.NoError(t, c.Run(ctx, []string{"clean", "-y"}))
	require.NoError(t, c.Run(ctx, []string{"restore", backupFile}))
	assert.Contains(t, out.String(), "Database restored successfully")
	assert.Equal(t, 4, countPosts(t, c.DBPath))

	require.NoError(t, c.Run(ctx, []string{"seed", "1"}))
	require.NoError(t, c.Run(ctx, []string{"restore", backupFile, "--yes"}))
	assert.Equal(t, 4, countPosts(t, c.DBPath))
}

func TestBackupWithoutDatabase(t *testing.T) {
	c, out := setupCommands(t, "")

	file, err := c.backup()
	require.NoError(t, err)
	assert.Empty(t, file)
	assert.Contains(t, out.String(), "No database exists to backup")
}

func TestRestoreMissingFile(t *testing.T) {
	c, out := setupCommands(t, "")

	err := c.Run(context.Background(), []string{"restore", filepath.Join(os.TempDir(), "nope.db")})
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out.String(), "Backup file does not exist")
}
