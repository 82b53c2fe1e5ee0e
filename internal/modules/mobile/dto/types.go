package dto

type InstallOutput struct {
	CacheName string
	Assets    []string
}

type FetchOutput struct {
	Path        string
	ContentType string
	Body        []byte
	FromCache   bool
}
