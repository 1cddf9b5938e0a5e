package args

// Version is the release version reported by the CLI and the network adapters.
const Version = "0.3.0"
