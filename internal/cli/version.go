package cli

var (
	Version = "1.0.0"
)
