package cmd

import (
	"io"
	"os"

	calog "github.com/xolan/calrange/internal/log"
	"github.com/xolan/calrange/internal/service"
	"github.com/xolan/calrange/internal/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)
	// Services builds the service layer. Called once per command.
	Services func() (*service.Services, error)
	// Browse runs the interactive browser until the user quits.
	Browse func(services *service.Services, req service.RangeRequest) error
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		Services: func() (*service.Services, error) {
			return service.NewServices(calog.Nop())
		},
		Browse: tui.Run,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
