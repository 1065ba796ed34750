package neutronbirth

import (
	"math/rand"

	"github.com/lukaszgryglicki/neutronbirth/internal/plasma"
	"github.com/pkg/browser"
)

var (
	Debug = false // set to true for verbose debug output
	Show  = true  // set to false to skip opening the viewer (headless runs)
	// AssetsHost is where the rendered page loads the echarts scripts from.
	AssetsHost = DefaultAssetsHost
	// OpenFile presents a rendered HTML document to the user.
	OpenFile = browser.OpenFile
	// Compile time checks that the concrete collaborators satisfy the pipeline interfaces
	_ Source  = (*plasma.Source)(nil)
	_ Uniform = (*rand.Rand)(nil)
)
