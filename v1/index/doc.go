// Package index manages indexes on the control plane: create, list,
// describe, configure and delete, plus creation bound to a hosted
// embedding model.
//
// All operations return the uniform [rest.Envelope]; creation succeeds
// with 201 and deletion with 202, every other operation with 200.
//
// The describe response carries the index's data-plane host.
// [Client.DataPlaneHost] extracts it; data-plane clients (vectors,
// imports) are constructed from that host:
//
//	idx, _ := index.NewClient(rc)
//	host, err := idx.DataPlaneHost(ctx, "docs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vec, _ := vectors.NewClient(rc, host)
package index
