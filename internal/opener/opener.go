package opener

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"

	"github.com/LFroesch/peek/internal/icons"
	"github.com/LFroesch/peek/internal/logger"
)

// Opener launches a file in an external application. An empty app means the
// system default handler.
type Opener interface {
	Open(app, path string) error
}

// System opens files with the platform launcher (open, xdg-open, start).
type System struct{}

func (System) Open(app, path string) error {
	var err error
	if app == "" {
		err = open.Start(path)
	} else {
		err = open.StartWith(path, app)
	}
	if err != nil {
		logger.Error("Failed to open %s with %q: %v", path, app, err)
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	logger.Info("Opened %s with %q", path, app)
	return nil
}

// AppFor looks up the application configured for name's extension, falling
// back to defaultApp.
func AppFor(name string, apps map[string]string, defaultApp string) string {
	if app, ok := apps[icons.Extension(name)]; ok && app != "" {
		return app
	}
	return defaultApp
}

// Func adapts a plain function to Opener.
type Func func(app, path string) error

func (f Func) Open(app, path string) error {
	return f(app, path)
}
