package pdf

import "context"

// Renderer turns an HTML document into PDF bytes.
type Renderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}
