package document

import (
	"context"
	"fmt"

	"github.com/yaklabco/gomdbuild/internal/logging"
	"github.com/yaklabco/gomdbuild/pkg/config"
	"github.com/yaklabco/gomdbuild/pkg/fsutil"
	"github.com/yaklabco/gomdbuild/pkg/mdcheck"
)

// Save writes the content to path atomically. With opts.Backup set, an
// existing file is first copied to path+fsutil.BackupSuffix. Nil opts use
// the options given to WithConfig, or config.Default.
func (d *Document) Save(ctx context.Context, path string, opts *config.Options) error {
	opts = d.options(opts)

	if opts.Backup {
		backupPath, err := fsutil.Backup(ctx, path)
		if err != nil {
			d.logger.Debug("backup failed", logging.FieldPath, path, logging.FieldError, err)
			return fmt.Errorf("save %s: %w", path, err)
		}
		if backupPath != "" {
			d.logger.Debug("backed up document", logging.FieldPath, backupPath)
		}
	}

	n, err := fsutil.WriteAtomicFrom(ctx, path, d, 0)
	if err != nil {
		d.logger.Debug("save failed", logging.FieldPath, path, logging.FieldError, err)
		return fmt.Errorf("save %s: %w", path, err)
	}

	d.logger.Debug("saved document", logging.FieldPath, path, logging.FieldBytes, n)
	return nil
}

// SaveIfChanged is like Save without backups, but leaves path untouched
// when it already holds the content. It reports whether path was written.
func (d *Document) SaveIfChanged(ctx context.Context, path string) (bool, error) {
	changed, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(d.String()), 0)
	if err != nil {
		return false, fmt.Errorf("save %s: %w", path, err)
	}

	d.logger.Debug("saved document", logging.FieldPath, path, logging.FieldChanged, changed)
	return changed, nil
}

// Check parses the content with the flavor from opts and returns its
// outline. Nil opts use the options given to WithConfig, or config.Default.
func (d *Document) Check(ctx context.Context, opts *config.Options) (*mdcheck.Outline, error) {
	opts = d.options(opts)

	outline, err := mdcheck.Inspect(logging.WithLogger(ctx, d.logger), []byte(d.String()), opts.Flavor)
	if err != nil {
		return nil, fmt.Errorf("check document: %w", err)
	}
	return outline, nil
}
