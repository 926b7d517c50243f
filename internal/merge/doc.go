package merge

// Package merge implements the client side of the remote merge endpoint: it
// streams two videos and a resolution as a multipart POST and hands back the
// merged payload as an opaque byte stream. It also defines the error taxonomy
// (validation vs transport) shared by the form and the CLI.
