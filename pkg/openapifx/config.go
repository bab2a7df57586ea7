package openapifx

type Config struct {
	Enabled bool
	// PublicHost and PublicPath override the host and base path baked into
	// the generated OpenAPI document, for deployments behind a proxy.
	PublicHost string
	PublicPath string
}
