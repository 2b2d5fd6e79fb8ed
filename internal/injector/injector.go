//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/geogeo/internal/core/observability/log"
	"github.com/zeusync/geogeo/internal/scene"
)

// InitializeScene builds a scene wired to the process-wide logger.
func InitializeScene(cfg *scene.Config) (*scene.Scene, error) {
	wire.Build(
		log.Provide,
		wire.Bind(new(log.Log), new(*log.Logger)),
		scene.Build,
	)
	return nil, nil
}
