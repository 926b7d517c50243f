package platform

// Package platform contains OS/platform integration: the downloads directory,
// saving merged files without clobbering earlier ones, and OS open/reveal.
