// Package ranker turns a task collection and a query into an ordered
// result list.
//
// There is no persistent index: every search is a linear rescan. Large
// collections are scored in fixed-size batches across an errgroup worker
// pool; each batch writes into result slots addressed by input index, so
// parallelism never affects ordering. The final sort is stable and
// descending by score, with input order as the tie-break.
//
//	r := ranker.New()
//	results, err := r.SearchString(ctx, tasks, `report NOT draft`)
package ranker
