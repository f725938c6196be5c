package core

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/huangsam/gitplots/internal/contract"
)

// isHidden reports whether a directory entry should be skipped.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// requireDir fails with a StructureError unless path is an existing directory.
func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &contract.StructureError{Path: path, Reason: "cannot access path", Err: err}
	}
	if !info.IsDir() {
		return &contract.StructureError{Path: path, Reason: "not a directory"}
	}
	return nil
}

// ListCategories returns the category names under root. An explicit list is
// validated and kept in the given order; otherwise every visible
// subdirectory is a category, sorted by name. Plain files directly under
// root are ignored.
func ListCategories(root string, explicit []string) ([]string, error) {
	if err := requireDir(root); err != nil {
		return nil, err
	}

	if len(explicit) > 0 {
		var categories []string
		for _, name := range explicit {
			if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
				return nil, &contract.StructureError{Path: filepath.Join(root, name), Reason: "invalid category name"}
			}
			if err := requireDir(filepath.Join(root, name)); err != nil {
				return nil, err
			}
			if !slices.Contains(categories, name) {
				categories = append(categories, name)
			}
		}
		return categories, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &contract.StructureError{Path: root, Reason: "cannot list directory", Err: err}
	}
	var categories []string
	for _, e := range entries {
		if isHidden(e.Name()) {
			continue
		}
		info, err := os.Stat(filepath.Join(root, e.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		categories = append(categories, e.Name())
	}
	slices.Sort(categories)
	return categories, nil
}

// ListRepositories returns the sorted repository names inside a category
// directory. Hidden entries are skipped. A plain file is a StructureError
// unless ignoreFiles is set, in which case its name is returned in skipped.
func ListRepositories(categoryDir string, ignoreFiles bool) (repos []string, skipped []string, err error) {
	if err := requireDir(categoryDir); err != nil {
		return nil, nil, err
	}
	entries, err := os.ReadDir(categoryDir)
	if err != nil {
		return nil, nil, &contract.StructureError{Path: categoryDir, Reason: "cannot list directory", Err: err}
	}

	for _, e := range entries {
		if isHidden(e.Name()) {
			continue
		}
		path := filepath.Join(categoryDir, e.Name())
		info, err := os.Stat(path) // Follow symlinks to repositories
		if err != nil {
			return nil, nil, &contract.StructureError{Path: path, Reason: "cannot access entry", Err: err}
		}
		if info.IsDir() {
			repos = append(repos, e.Name())
			continue
		}
		if !ignoreFiles {
			return nil, nil, &contract.StructureError{Path: path, Reason: "plain file inside a category (use --ignore-files to skip)"}
		}
		skipped = append(skipped, e.Name())
	}
	slices.Sort(repos)
	return repos, skipped, nil
}
