package version

// Version is the build version, overridden at release time via
// -ldflags "-X github.com/livp123/logstat/internal/version.Version=vX.Y.Z".
var Version = "dev"
