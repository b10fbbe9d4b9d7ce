package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/clog/pkg"
)

// Version prints the program version.
type Version struct{}

// Run executes the version command.
func (Version) Run(ctx context.Context) error {
	_, err := fmt.Fprintln(envFrom(ctx).Out, pkg.Name, pkg.Version())
	if err != nil {
		return ErrPrint.Wrap(err)
	}

	return nil
}
