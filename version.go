package metallic

// Version is the library version, surfaced by the CLI version command.
const Version = "0.1.0"
