package domain

import "errors"

// ErrInvalidInput is returned when the caller's free-text input is empty
// after trimming (or, at the HTTP boundary, not a string at all).
// Handlers map this to HTTP 400 with a fixed message.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound is returned when an adventure key does not exist in the corpus.
// Handlers should map this to HTTP 404. The resolver never returns it:
// resolution is total and falls back to the default record instead.
var ErrNotFound = errors.New("not found")

// ErrCorpusLoad is returned when the corpus storage is unreadable or
// unparseable at load time. It is fatal for that load attempt: the server
// must refuse to start rather than serve an empty corpus.
var ErrCorpusLoad = errors.New("corpus load failure")
