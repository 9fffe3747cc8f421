// Package client is the single path from the CLI to the ResearchHub HTTP API.
//
// # Overview
//
// HTTPClient.Do resolves a path against the configured origin, attaches the
// stored credential as "Authorization: Bearer <token>" when one exists, and
// classifies every call into exactly one outcome:
//
//   - success: 2xx, the JSON body (if any) is decoded into out;
//   - ErrUnauthorized: 401 on a call that could carry the stored credential.
//     The session is cleared and the navigator is sent to the landing route,
//     once per failing call. There is no refresh and no retry;
//   - *RequestFailedError (matches ErrRequestFailed): any other non-2xx, with
//     the server's "detail" message when it sent one. The session is kept;
//   - ErrUnavailable: no response at all. The session is kept.
//
// A call abandoned because ctx is done returns ctx.Err() as is, not
// ErrUnavailable, and records no outcome.
//
// Public requests (register, token issuance) never carry the stored
// credential and report a 401 as a RequestFailedError, since there the
// status means "bad credentials" rather than "session expired".
//
// # Timeouts
//
// The helper imposes none. A hung call blocks until the caller's context is
// done.
package client
