package trialloc

// Version is the library version, consumed by the CLI's version command.
const Version = "0.1.0"
