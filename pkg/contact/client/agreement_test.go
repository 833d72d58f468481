package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/contact/client"
)

// The browser and server checks are separate implementations of one rule;
// for already-trimmed input they must agree.
func TestCheck_AgreesWithServer(t *testing.T) {
	t.Parallel()

	emails := []string{
		"a@b.com", "a@b.c", "a.b@c.d.e", "a@b.", "a@.b", "@b.c", "a@", "a@b",
		"a@@b.c", "a@b@c.d", "a b@c.d", "a@b c.d", "a@b .c", "a@b\u0085.c",
		"a@b..c", "a@..", "a@...", "é@ü.ö", "a@b.c　d", "a\t@b.c", ".@..", "a@b\ufeff.c", "a\ufeff@b.c",
	}

	for _, email := range emails {
		form := client.Form{Name: "n", Email: email, Subject: "s", Message: "m"}
		_, msg := client.Check(form)

		serverErr := contact.Validate(contact.Submission{Name: "n", Email: email, Subject: "s", Message: "m"})

		assert.Equal(t, msg == "", serverErr == nil, "email %q", email)
	}
}
