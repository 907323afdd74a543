package redis_functions

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:embed *.lua
var libraries embed.FS

// FunctionLoader is the subset of redis.Cmdable needed to install libraries.
type FunctionLoader interface {
	FunctionLoadReplace(ctx context.Context, code string) *redis.StringCmd
}

// LoadAll installs (or replaces) every embedded Lua library and returns the
// library names Redis reported.
func LoadAll(ctx context.Context, rdb FunctionLoader) ([]string, error) {
	return load(ctx, rdb, libraries)
}

func load(ctx context.Context, rdb FunctionLoader, src fs.ReadDirFS) ([]string, error) {
	files, err := src.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("read embed dir: %w", err)
	}
	var loaded []string
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".lua") {
			continue
		}

		code, err := fs.ReadFile(src, f.Name())
		if err != nil {
			return loaded, err
		}
		name, err := rdb.FunctionLoadReplace(ctx, string(code)).Result()
		if err != nil {
			return loaded, fmt.Errorf("load lua %s: %w", f.Name(), err)
		}
		loaded = append(loaded, name)
		zap.L().Info("lua function loaded", zap.String("file", f.Name()), zap.String("library", name))
	}
	return loaded, nil
}
