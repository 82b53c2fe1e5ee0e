package out

import "context"

type Bundle interface {
	Read(name string) ([]byte, error)
}

type Writer interface {
	Write(ctx context.Context, dir, name string, data []byte) error
}
