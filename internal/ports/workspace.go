package ports

import "github.com/aalvaropc/contrastly/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
