// Package admin implements the `db` maintenance subcommands.
package admin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"blogpost/app/logger"
	"blogpost/app/repositories"
	"blogpost/app/seed"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// ErrUsage is returned for unknown subcommands or bad arguments.
var ErrUsage = errors.New("usage error")

// DefaultSeedCount matches the size of one list page.
const DefaultSeedCount = 10

// Commands runs maintenance tasks against the Badger directory at DBPath.
type Commands struct {
	DBPath    string
	BackupDir string
	Log       zerolog.Logger
	In        io.Reader
	Out       io.Writer
	// Now names backup files; defaults to time.Now.
	Now func() time.Time
}

// Run dispatches a `db` subcommand.
func (c *Commands) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		c.printHelp()
		return ErrUsage
	}

	switch args[0] {
	case "init":
		return c.initDB()
	case "clean":
		return c.clean(len(args) > 1 && (args[1] == "-y" || args[1] == "--yes"))
	case "backup":
		_, err := c.backup()
		return err
	case "restore":
		if len(args) < 2 {
			fmt.Fprintln(c.Out, "Error: backup file path required for restore")
			return ErrUsage
		}
		return c.restore(args[1], len(args) > 2 && (args[2] == "-y" || args[2] == "--yes"))
	case "seed":
		n := DefaultSeedCount
		if len(args) > 1 {
			v, err := strconv.Atoi(args[1])
			if err != nil || v < 1 {
				fmt.Fprintf(c.Out, "Error: invalid seed count %q\n", args[1])
				return ErrUsage
			}
			n = v
		}
		return c.seed(ctx, n)
	case "help":
		c.printHelp()
		return nil
	default:
		fmt.Fprintf(c.Out, "Unknown db command: %s\n\n", args[0])
		c.printHelp()
		return ErrUsage
	}
}

func (c *Commands) printHelp() {
	fmt.Fprintln(c.Out, `Usage: blogpost db <command> [options]

Commands:
  init                      Initialize a new empty database
  clean [--yes]             Remove the database
  backup                    Create a backup of the database
  restore <file> [--yes]    Restore database from backup
  seed [n]                  Insert n generated blog posts (default 10)
  help                      Display this help message`)
}

func (c *Commands) open() (*badger.DB, error) {
	return repositories.OpenBadger(c.DBPath, logger.NewBadger(c.Log))
}

func (c *Commands) exists() bool {
	_, err := os.Stat(c.DBPath)
	return err == nil
}

// confirm asks a yes/no question on Out and reads the answer from In.
func (c *Commands) confirm(question string) bool {
	fmt.Fprintf(c.Out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(c.In).ReadString('\n')
	answer = strings.TrimSpace(answer)
	return answer == "y" || answer == "Y"
}

// initDB initializes a new empty database
func (c *Commands) initDB() error {
	if c.exists() {
		fmt.Fprintln(c.Out, "Database already exists. Use 'clean' first if you want to reinitialize.")
		return nil
	}
	if err := os.MkdirAll(c.DBPath, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := c.open()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	c.Log.Info().Str("path", c.DBPath).Msg("database initialized")
	fmt.Fprintln(c.Out, "Database initialized successfully")
	return nil
}

// clean removes the database
func (c *Commands) clean(yes bool) error {
	if !c.exists() {
		fmt.Fprintln(c.Out, "Database is already clean (does not exist)")
		return nil
	}
	if !yes && !c.confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Fprintln(c.Out, "Operation cancelled")
		return nil
	}
	if err := os.RemoveAll(c.DBPath); err != nil {
		return fmt.Errorf("failed to clean database: %w", err)
	}

	c.Log.Info().Str("path", c.DBPath).Msg("database removed")
	fmt.Fprintln(c.Out, "Database cleaned successfully")
	return nil
}

// backup writes a full backup and returns its path
func (c *Commands) backup() (string, error) {
	if !c.exists() {
		fmt.Fprintln(c.Out, "No database exists to backup")
		return "", nil
	}
	if err := os.MkdirAll(c.BackupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	db, err := c.open()
	if err != nil {
		return "", fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	backupFile := filepath.Join(c.BackupDir, fmt.Sprintf("backup_%d.db", now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}

	c.Log.Info().Str("file", backupFile).Msg("database backed up")
	fmt.Fprintf(c.Out, "Database backed up successfully to %s\n", backupFile)
	return backupFile, nil
}

// restore replaces the database with the contents of a backup
func (c *Commands) restore(backupFile string, yes bool) error {
	if _, err := os.Stat(backupFile); err != nil {
		fmt.Fprintf(c.Out, "Backup file does not exist: %s\n", backupFile)
		return ErrUsage
	}

	if c.exists() {
		if !yes && !c.confirm("Existing database found. Do you want to replace it?") {
			fmt.Fprintln(c.Out, "Operation cancelled")
			return nil
		}
		if err := os.RemoveAll(c.DBPath); err != nil {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}
	if err := os.MkdirAll(c.DBPath, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := c.open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}

	c.Log.Info().Str("file", backupFile).Msg("database restored")
	fmt.Fprintln(c.Out, "Database restored successfully")
	return nil
}

// seed inserts n generated blog posts
func (c *Commands) seed(ctx context.Context, n int) error {
	db, err := c.open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := repositories.NewBadgerBlogPostRepository(db)
	gen := seed.NewGenerator(uint64(time.Now().UnixNano()))
	if _, err := gen.Insert(ctx, repo, n); err != nil {
		return err
	}
	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	c.Log.Info().Int("inserted", n).Int("total", total).Msg("database seeded")
	fmt.Fprintf(c.Out, "Inserted %d blog posts (%d total)\n", n, total)
	return nil
}
