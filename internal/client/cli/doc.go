// Package cli provides the interactive ResearchHub command-line client.
//
// The REPL keeps a current route, mirroring the pages of the web client.
// Commands that show protected data enter their route through the access
// gate; without a stored token they are redirected to the landing route "/"
// and nothing is requested. Any API call answered with 401 clears the
// session and redirects to "/" as well.
//
// Feedback is queued on a notify.Board while a command runs and printed
// after it, so repeated failures with the same notice id appear once.
//
// The REPL is started via App.Run, which blocks until the user exits or
// input ends.
package cli
