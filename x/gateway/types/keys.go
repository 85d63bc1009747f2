package types

const (
	// ModuleName is the codespace for errors shared by the pool and swap modules
	ModuleName = "gateway"
)
