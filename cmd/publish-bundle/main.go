package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"lexbg-assistant/config"
	"lexbg-assistant/storage"
)

func main() {
	dir := flag.String("dir", "./client/dist", "Built client bundle directory")
	flag.Parse()

	config.LoadEnv()

	if _, err := os.Stat(filepath.Join(*dir, "index.html")); err != nil {
		log.Fatalf("%s has no index.html. Build the client first.", *dir)
	}

	bundleStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	if local, ok := bundleStorage.(*storage.LocalStorage); ok {
		overlap, err := overlaps(local.Root(), *dir)
		if err != nil {
			log.Fatalf("Failed to resolve paths: %v", err)
		}
		if overlap {
			log.Fatalf("Storage directory %s overlaps %s. Set STORAGE_LOCAL_PATH or -dir to separate directories.", local.Root(), *dir)
		}
	}

	uploaded, err := publish(context.Background(), bundleStorage, os.DirFS(*dir))
	if err != nil {
		log.Fatalf("Failed to publish bundle: %v", err)
	}

	fmt.Printf("\n✅ Published %d files from %s\n", uploaded, *dir)
}

// overlaps reports whether one of the two directories is the other or
// contains it
func overlaps(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return within(absA, absB) || within(absB, absA), nil
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// published is one key written by this run and what it held before
type published struct {
	key      string
	previous []byte
	existed  bool
}

// publish uploads every file of bundle. If an upload fails, keys this run
// created are deleted and keys it overwrote get their previous content back.
func publish(ctx context.Context, dst storage.Storage, bundle fs.FS) (int, error) {
	var done []published

	err := fs.WalkDir(bundle, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		previous, existed, err := snapshot(ctx, dst, path)
		if err != nil {
			return fmt.Errorf("failed to read current %s: %w", path, err)
		}

		file, err := bundle.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()

		if err := dst.Upload(ctx, path, file); err != nil {
			return fmt.Errorf("failed to upload %s: %w", path, err)
		}
		done = append(done, published{key: path, previous: previous, existed: existed})
		log.Printf("✓ %s", path)
		return nil
	})
	if err != nil {
		rollback(ctx, dst, done)
		return 0, err
	}

	return len(done), nil
}

// snapshot reads the object currently stored under key, if any
func snapshot(ctx context.Context, dst storage.Storage, key string) ([]byte, bool, error) {
	reader, err := dst.Open(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func rollback(ctx context.Context, dst storage.Storage, done []published) {
	for _, p := range done {
		if p.existed {
			if err := dst.Upload(ctx, p.key, bytes.NewReader(p.previous)); err != nil {
				log.Printf("Warning: Failed to restore %s after failed publish: %v", p.key, err)
			}
			continue
		}
		if err := dst.Delete(ctx, p.key); err != nil {
			log.Printf("Warning: Failed to remove %s after failed publish: %v", p.key, err)
		}
	}
}
