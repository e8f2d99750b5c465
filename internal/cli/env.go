package cli

import (
	"context"
	"fmt"

	"github.com/musicalloto/lotopack/internal/pipeline"
)

// Represents the 'lotopack env' command.
type EnvCmd struct {
	Python string `help:"Check this interpreter instead of the project environment." placeholder:"PATH" type:"path" env:"LOTOPACK_PYTHON"`
}

// Executes the env command.
//
// Creates the environment if the project allows it, then prints the
// interpreter builds will use.
func (c *EnvCmd) Run(ctx context.Context) error {
	root, p, cfg, err := loadProject()
	if err != nil {
		return err
	}

	result, err := pipeline.Prepare(ctx, pipeline.Options{
		Root:        root,
		Platform:    p,
		Config:      cfg,
		Interpreter: c.Python,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Interpreter)
	return nil
}
