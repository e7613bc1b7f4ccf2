// Package pagination provides lazy sequential iteration over paged
// Blockfrost endpoints.
//
// Blockfrost pages are numbered from 1 and an empty page marks the end of
// data. The Lister pulls one page per advancement, on demand: nothing is
// fetched ahead of the consumer, which bounds memory and keeps the request
// rate under the consumer's control.
//
// Example usage:
//
//	lister := pagination.NewLister(fetchPage, pagination.WithPageSize(50))
//	for lister.Next(ctx) {
//		for _, block := range lister.Page() {
//			fmt.Println(block.Hash)
//		}
//	}
//	if err := lister.Err(); err != nil {
//		return err
//	}
//
// The sequence ends cleanly on the first empty page (Err returns nil) or
// terminally on the first fetch error (Err returns it, exactly once). A
// consumer may simply stop calling Next at any point; no cancellation call
// is needed and no request stays in flight.
package pagination
