package cliutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ValidateOutputPath refuses an output path that resolves to one of the input
// paths. When the output file already exists a warning is written to warn.
func ValidateOutputPath(outputPath string, inputPaths []string, warn io.Writer) error {
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, in := range inputPaths {
		if in == "" {
			continue
		}
		absInput, err := filepath.Abs(in)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", in, err)
		}
		if absOutput == absInput {
			return fmt.Errorf("output file %s would overwrite input spec %s", outputPath, in)
		}
	}

	if _, err := os.Stat(outputPath); err == nil && warn != nil {
		Writef(warn, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}
	return nil
}

// RejectSymlinkOutput returns an error when path is an existing symlink.
func RejectSymlinkOutput(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cliutil: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("cliutil: refusing to write to symlink: %s", path)
	}
	return nil
}

// WriteOutput writes content to path after the symlink check, followed by a
// newline.
func WriteOutput(path, content string) error {
	cleaned := filepath.Clean(path)
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, []byte(content+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
