// Package mcp exposes the task search engine over the Model Context
// Protocol on stdio.
//
// Five tools are registered:
//
//	upsert_task      create or update a task
//	list_tasks       list stored tasks
//	search_tasks     parse a boolean query and rank the stored tasks
//	recent_searches  list or clear the saved query history
//	get_status       database statistics
//
// The server owns the SQLite store and the ranker; the engine packages
// (queryparser, matcher, scorer, ranker) stay free of protocol and
// persistence concerns. Tool errors use JSON-RPC error codes; a failure to
// persist a recent search is logged and never fails the search itself.
package mcp
