package sbmltab

import _ "embed"

// Version is the release of the generator, stamped into --version output.
//
//go:embed VERSION
var Version string
