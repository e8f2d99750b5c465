package cli

import (
	"context"
	"fmt"

	"github.com/musicalloto/lotopack/internal"
)

// Represents the 'lotopack version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.Name, internal.VersionString())
	return nil
}
