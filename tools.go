//go:build tools

package tools

// Tool dependencies are tracked here with blank imports so their versions
// are pinned in go.mod. Run: go run github.com/vektra/mockery/v2 to
// regenerate the mocks configured in .mockery.yaml.
import (
	_ "github.com/vektra/mockery/v2"
)
