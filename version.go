package shopapi

// Version is the current release of the shopapi client library.
const Version = "0.1.0"
