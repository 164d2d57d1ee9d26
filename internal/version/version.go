package version

// AppVersion is the caid release version. Overridden at build time via
// -ldflags "-X caid/internal/version.AppVersion=...".
var AppVersion = "1.0.0"
