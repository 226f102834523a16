package config

// KnownServices lists every service the proxy can front, in registration order.
var KnownServices = []string{
	"radarr",
	"sonarr",
	"lidarr",
	"prowlarr",
	"chaptarr",
	"bazarr",
	"seerr",
}

// DefaultPorts maps service name to its conventional port.
var DefaultPorts = map[string]int{
	"radarr":   7878,
	"sonarr":   8989,
	"lidarr":   8686,
	"prowlarr": 9696,
	"chaptarr": 8787,
	"bazarr":   6767,
	"seerr":    5055,
}

// DefaultAuthMethods maps service name to authentication method. Every
// backend accepts the API key in the X-Api-Key header.
var DefaultAuthMethods = map[string]string{
	"radarr":   "header",
	"sonarr":   "header",
	"lidarr":   "header",
	"prowlarr": "header",
	"chaptarr": "header",
	"bazarr":   "header",
	"seerr":    "header",
}
