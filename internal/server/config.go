package server

type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// ScaffoldDir is the root of an unpacked scaffold; the frontend build is
	// served from <ScaffoldDir>/frontend/dist.
	ScaffoldDir string
}

func DefaultConfig() Config {
	return Config{
		Addr:        ":5000",
		ScaffoldDir: ".",
	}
}
