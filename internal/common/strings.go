package common

// UnknownStr is the String() of enum values outside their defined range.
const UnknownStr = "unknown"
