package internal

// Version is the current wordbar release
const Version = "0.3.1"
