//go:build tools

package press

// Tool dependencies for go:generate.
import (
	_ "github.com/dmarkham/enumer"
)
