package registry

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/goalcheck/internal/ctxlog"
)

// AliasBlock is a single `predicate "key" { type = "TypeName" }` block in an
// alias manifest.
type AliasBlock struct {
	Key  string `hcl:"key,label"`
	Type string `hcl:"type"`
}

// Manifest is the top-level structure of a predicate alias manifest file.
type Manifest struct {
	Predicates []*AliasBlock `hcl:"predicate,block"`
}

// LoadManifest parses one HCL manifest and registers every alias it
// declares.
func (r *Registry) LoadManifest(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var manifest Manifest
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &manifest); diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	for _, alias := range manifest.Predicates {
		if err := r.RegisterAlias(alias.Key, alias.Type); err != nil {
			return fmt.Errorf("manifest %s: %w", path, err)
		}
		logger.Debug("Registered predicate alias from manifest.", "key", alias.Key, "type", alias.Type, "file", path)
	}
	return nil
}

// LoadManifestsRecursively walks dir and loads every .hcl manifest found.
func (r *Registry) LoadManifestsRecursively(ctx context.Context, dir string) error {
	logger := ctxlog.FromContext(ctx)

	paths, err := findManifests(dir)
	if err != nil {
		logger.Error("Failed to walk manifest directory", "path", dir, "error", err)
		return err
	}
	if len(paths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", dir)
		return nil
	}

	for _, path := range paths {
		if err := r.LoadManifest(ctx, path); err != nil {
			return err
		}
	}

	logger.Info("Predicate manifests loaded.", "files", len(paths), "predicates", len(r.preds))
	return nil
}

func findManifests(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
