//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary directory for the documents and
// the config of one test
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateTestFile writes a document into the workspace and returns its path
func (tf *TUITestFramework) CreateTestFile(name, contents string) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ReadTestFile returns the contents of a workspace file
func (tf *TUITestFramework) ReadTestFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(tf.workspace, name))
	return string(data), err
}

// ConfigPath is where the editor keeps its config for this workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, ".config", "dosedit", "config.toml")
}
