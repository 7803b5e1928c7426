// Package pkgroutine runs named background tasks under a concurrency limit.
//
// The Manager collects returned errors, tags them with the task name and logs
// panics so that background loops (live updates, event broadcasting) do not
// crash the process silently.
package pkgroutine
