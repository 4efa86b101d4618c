//go:build tools
// +build tools

package tools

//nolint:revive
import (
	_ "github.com/air-verse/air"
	_ "github.com/google/wire/cmd/wire"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "go.uber.org/mock/mockgen"
)
