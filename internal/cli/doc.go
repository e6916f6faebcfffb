// Package cli renders coincalc runs in the terminal.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatResultLine], [FormatStatus].
//
//   - Print* functions write fixed report sections such as the execution
//     banner. Examples: [PrintExecutionConfig], [PrintExecutionMode].
package cli
