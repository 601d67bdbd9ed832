// Package internal contains the core infrastructure for the sfoglia widget
// framework: SDL initialization, theming, fonts, drawing primitives, and
// logging. Types and functions in this package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
