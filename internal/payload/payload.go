// Package payload bundles the landing page component sources that
// fix-components restores.
package payload

import (
	"embed"
	"fmt"
	"path"

	"github.com/jobtrackai/fix-components/internal/materialize"
)

//go:embed assets/*.tsx
var assets embed.FS

// Dir is where components are written, relative to the target root
const Dir = "src/components"

// Components lists the bundled files in the order they are written
var Components = []string{
	"Header.tsx",
	"Hero.tsx",
	"Amplify.tsx",
}

// Files returns the bundled components as FileSpecs in write order.
// Content is returned byte for byte as bundled.
func Files() ([]materialize.FileSpec, error) {
	specs := make([]materialize.FileSpec, 0, len(Components))

	for _, name := range Components {
		data, err := assets.ReadFile(path.Join("assets", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read bundled component %s: %w", name, err)
		}

		specs = append(specs, materialize.FileSpec{
			Path:    path.Join(Dir, name),
			Content: string(data),
		})
	}

	return specs, nil
}
