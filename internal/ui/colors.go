package ui

// Color accessors return the ANSI escape code for a category of the active
// theme. They read the theme under the lock, so they are safe to call from
// concurrent goroutines. With the "none" theme active every accessor returns
// the empty string and output degrades to plain text.

// ColorPrimary returns the accent color for primary elements.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the color for de-emphasized elements.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the color for positive outcomes.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the color for caution messages.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the color for failures.
func ColorError() string { return GetCurrentTheme().Error }

// ColorInfo returns the color for informational messages.
func ColorInfo() string { return GetCurrentTheme().Info }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
