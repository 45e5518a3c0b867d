// Package preflight provides readiness checks for the files and directories
// reelpub depends on.
//
// These checks run in two contexts:
//   - The publish command calls CheckCredentials before any upload; a missing
//     or unreadable secrets file aborts the run.
//   - The doctor command calls RunAll and renders every Result.
//
// Checks are selected by Mode so manual publishing does not demand upload
// credentials.
package preflight
