package internal

// Version is the numwords release version
const Version = "0.3.0"
