// Package client is the browser-side half of the contact form: it trims and
// checks the fields, posts them to /api/contact and turns every outcome into
// a status line for the visitor.
//
// The checks mirror the server's rules but are implemented separately, so
// the server never relies on the client having run them.
//
//	c := client.New("https://example.com", client.WithStatusHook(func(s client.Status) {
//		fmt.Println(s.Message)
//	}))
//	status := c.Submit(ctx, client.Form{Name: "Alice", Email: "a@b.com", Subject: "Hi", Message: "Hello"})
package client
