package platform

// Package platform contains OS/platform integration glue: configuration
// directory resolution and filesystem helpers shared by config and
// persistence.
