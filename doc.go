// Package dirsearch is a directory text search and identity resolution engine.
//
// It folds decorative Unicode letters to plain ASCII, matches comma-separated
// keyword queries against a product catalog, and resolves profile URL
// segments to profile records.
//
// # In-memory engine
//
//	eng, _ := dirsearch.New(dirsearch.WithMonospace())
//	res := eng.Search("shoes, kids", catalog, profiles, 20)
//	for _, p := range res.Profiles {
//	    fmt.Println(p.DisplayName)
//	}
//
//	switch out := eng.Resolve("@jan-s-cafe", profiles).(type) {
//	case dirsearch.Found:
//	    fmt.Println(out.Profile.ID, out.Stage)
//	case dirsearch.NotFound:
//	    fmt.Println("no such profile")
//	}
//
// # Store-backed client
//
//	client, _ := dirsearch.Connect(ctx, dirsearch.WithValkey("localhost:6379", ""))
//	defer client.Close()
//	_ = client.LoadSnapshots(ctx, catalog, profiles)
//	res, _ := client.Search(ctx, "shoes, kids", 20)
package dirsearch
