package client

import (
	"context"
	"fmt"

	"github.com/SupernaviX/blockfrost-go/pkg/pagination"
	"github.com/SupernaviX/blockfrost-go/pkg/types"
)

// BlocksLatest returns the latest block of the chain (the tip).
func (c *Client) BlocksLatest(ctx context.Context) (types.Block, error) {
	return Call[types.Block](ctx, c, "/blocks/latest")
}

// BlocksByID returns the block matching the given hash or number.
func (c *Client) BlocksByID(ctx context.Context, hashOrNumber string) (types.Block, error) {
	return Call[types.Block](ctx, c, fmt.Sprintf("/blocks/%s", hashOrNumber))
}

// BlocksSlot returns the block of the given slot.
func (c *Client) BlocksSlot(ctx context.Context, slotNumber int64) (types.Block, error) {
	return Call[types.Block](ctx, c, fmt.Sprintf("/blocks/slot/%d", slotNumber))
}

// BlocksByEpochAndSlot returns the block of the given slot within an epoch.
func (c *Client) BlocksByEpochAndSlot(ctx context.Context, epochNumber, slotNumber int64) (types.Block, error) {
	return Call[types.Block](ctx, c, fmt.Sprintf("/blocks/epoch/%d/slot/%d", epochNumber, slotNumber))
}

// BlocksLatestTxs returns one page of transaction hashes within the latest
// block.
func (c *Client) BlocksLatestTxs(ctx context.Context, pg *Pagination) ([]string, error) {
	return CallPaged[string](ctx, c, "/blocks/latest/txs", pg)
}

// BlocksNext returns one page of blocks following the given block.
func (c *Client) BlocksNext(ctx context.Context, hashOrNumber string, pg *Pagination) ([]types.Block, error) {
	return CallPaged[types.Block](ctx, c, fmt.Sprintf("/blocks/%s/next", hashOrNumber), pg)
}

// BlocksPrevious returns one page of blocks preceding the given block.
func (c *Client) BlocksPrevious(ctx context.Context, hashOrNumber string, pg *Pagination) ([]types.Block, error) {
	return CallPaged[types.Block](ctx, c, fmt.Sprintf("/blocks/%s/previous", hashOrNumber), pg)
}

// BlocksTxs returns one page of transaction hashes within the given block.
func (c *Client) BlocksTxs(ctx context.Context, hashOrNumber string, pg *Pagination) ([]string, error) {
	return CallPaged[string](ctx, c, fmt.Sprintf("/blocks/%s/txs", hashOrNumber), pg)
}

// BlocksAffectedAddresses returns one page of addresses affected within the
// given block.
func (c *Client) BlocksAffectedAddresses(ctx context.Context, hashOrNumber string, pg *Pagination) ([]types.AffectedAddress, error) {
	return CallPaged[types.AffectedAddress](ctx, c, fmt.Sprintf("/blocks/%s/addresses", hashOrNumber), pg)
}

// pagedLister builds a Lister over a paged endpoint of the client.
func pagedLister[T any](c *Client, endpoint string, opts []pagination.Option) *pagination.Lister[T] {
	return pagination.NewLister(func(ctx context.Context, page, count int) ([]T, error) {
		return CallPaged[T](ctx, c, endpoint, &Pagination{Page: page, Count: count})
	}, opts...)
}

// BlocksNextAll walks all blocks following the given block, page by page.
func (c *Client) BlocksNextAll(hashOrNumber string, opts ...pagination.Option) *pagination.Lister[types.Block] {
	return pagedLister[types.Block](c, fmt.Sprintf("/blocks/%s/next", hashOrNumber), opts)
}

// BlocksPreviousAll walks all blocks preceding the given block, page by page.
func (c *Client) BlocksPreviousAll(hashOrNumber string, opts ...pagination.Option) *pagination.Lister[types.Block] {
	return pagedLister[types.Block](c, fmt.Sprintf("/blocks/%s/previous", hashOrNumber), opts)
}

// BlocksTxsAll walks all transaction hashes of the given block, page by page.
func (c *Client) BlocksTxsAll(hashOrNumber string, opts ...pagination.Option) *pagination.Lister[string] {
	return pagedLister[string](c, fmt.Sprintf("/blocks/%s/txs", hashOrNumber), opts)
}

// BlocksAffectedAddressesAll walks all affected addresses of the given
// block, page by page.
func (c *Client) BlocksAffectedAddressesAll(hashOrNumber string, opts ...pagination.Option) *pagination.Lister[types.AffectedAddress] {
	return pagedLister[types.AffectedAddress](c, fmt.Sprintf("/blocks/%s/addresses", hashOrNumber), opts)
}
