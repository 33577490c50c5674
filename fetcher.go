package describe

import (
	"context"

	"github.com/WhiteAbeLincoln/sf-describe/errors"
)

// Connection is the capability the fetcher needs from an authenticated
// remote instance: list every object name the instance knows, and fetch the
// full describe document for one named object. Transport, authentication,
// and retry policy are entirely the implementation's concern.
type Connection interface {
	ListObjectNames(ctx context.Context) ([]string, error)
	Describe(ctx context.Context, name string) (*Document, error)
}

// Fetcher retrieves describe documents from a remote connection.
type Fetcher struct {
	conn Connection
}

// NewFetcher creates a Fetcher over the given connection.
func NewFetcher(conn Connection) *Fetcher {
	return &Fetcher{conn: conn}
}

// FetchAll lists the remote object names and issues one describe call per
// name, all in flight at once. The returned pending documents are in listing
// order; a failed describe fails only its own pending result, while a
// failed listing fails the whole call. No retry, batching, or rate limiting
// happens here.
func (f *Fetcher) FetchAll(ctx context.Context) ([]*PendingDocument, error) {
	names, err := f.conn.ListObjectNames(ctx)
	if err != nil {
		return nil, errors.NewError("list", err)
	}

	pendings := make([]*PendingDocument, len(names))
	for i, name := range names {
		p := newPending[*Document]()
		pendings[i] = p
		go func(name string, p *PendingDocument) {
			doc, err := f.conn.Describe(ctx, name)
			if err != nil {
				p.complete(nil, errors.NewPathError("describe", name, err))
				return
			}
			p.complete(doc, nil)
		}(name, p)
	}
	return pendings, nil
}
