package tools

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/wilhg/toolgate/pkg/tool"
)

type fileReadArgs struct {
	Path string `json:"path"`
}

type fileReadOut struct {
	Content string `json:"content"`
}

// FileReadTool reads a file from a provided fs.FS sandbox. Schemas are
// derived from the Go argument types.
type FileReadTool struct{ FS fs.FS }

func (t FileReadTool) Describe() tool.Descriptor {
	return tool.Descriptor{
		Name:         "fs.read",
		Description:  "Reads a text file from sandboxed fs",
		InputSchema:  mustSchema[fileReadArgs](),
		OutputSchema: mustSchema[fileReadOut](),
	}
}

func (t FileReadTool) Invoke(ctx context.Context, args map[string]any) (map[string]any, error) {
	if t.FS == nil {
		return nil, errors.New("no fs configured")
	}
	p, _ := args["path"].(string)
	if p == "" {
		return nil, errors.New("path required")
	}
	if filepath.IsAbs(p) || filepath.Clean(p) != p || strings.Contains(p, "..") {
		return nil, errors.New("invalid path")
	}
	b, err := fs.ReadFile(t.FS, p)
	if err != nil {
		return nil, err
	}
	return map[string]any{"content": string(b)}, nil
}

// mustSchema derives a JSON schema from a Go type. Registration-time only;
// a type that cannot produce a schema is a programming error.
func mustSchema[T any]() []byte {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		panic(err)
	}
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return b
}
