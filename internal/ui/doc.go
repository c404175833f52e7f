// Package ui provides theme and color support for calckit's presentation
// layers. It defines color schemes, ANSI escape code accessors used by the
// CLI and the benchmark reporter, and lipgloss palettes for the TUI
// workbench.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between business logic and presentation.
package ui
