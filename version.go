package zlang

// Version is the zlang front-end version reported by the CLI.
const Version = "0.1.0"

// BuildDate is stamped via -ldflags; left as-is for plain builds.
var BuildDate = "unknown"
