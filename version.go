package bittersweet

// Version is the release of the module, reported by the bitline CLI.
const Version = "0.3.0"
