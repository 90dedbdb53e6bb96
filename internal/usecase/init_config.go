package usecase

import "github.com/aalvaropc/rpnsort/internal/ports"

type InitConfig struct {
	initializer ports.ConfigInitializer
}

func NewInitConfig(initializer ports.ConfigInitializer) *InitConfig {
	return &InitConfig{initializer: initializer}
}

func (uc *InitConfig) Execute(dir string, force bool) (string, error) {
	return uc.initializer.Init(dir, force)
}
