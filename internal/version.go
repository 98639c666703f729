package internal

// Version is the release version reported by every command.
const Version = "0.1.0"
