package shared

// GenericResult describes the outcome of one command launch.
type GenericResult struct {
	Args    interface{} `json:"args"`
	Result  interface{} `json:"result"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
}

// GenericLaunchesResult groups the results of every launch of a command.
type GenericLaunchesResult struct {
	Launches []GenericResult `json:"launches"`
}

// Versions holds build information for the binary.
type Versions struct {
	Version       string `json:"version"`
	GolangVersion string `json:"golang_version"`
	BuildTime     string `json:"build_time"`
}
