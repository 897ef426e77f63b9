// Package assistant manages assistants and their contents: a
// retrieval-augmented answering service grounded on uploaded files.
//
// Management (create, list, describe, update, delete) goes to the
// control plane through [Client]. Contents — file upload, chat, context
// retrieval — go to the assistant's own data-plane host through
// [DataClient], constructed from the host the describe call returns:
//
//	mgr, _ := assistant.NewClient(rc)
//	host, err := mgr.DataPlaneHost(ctx, "support-bot")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := assistant.NewDataClient(rc, host, "support-bot")
//
//	env, err := data.Chat(ctx, assistant.ChatRequest{
//	    Messages: []assistant.Message{{Role: "user", Content: "What is our refund policy?"}},
//	})
//
// Context returns the grounding snippets without generating an answer
// and flattens into one row per snippet.
package assistant
