package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/imgurshot/internal/common"
)

// getSecret is an indirection used to facilitate testing.
var getSecret = GetSecret

// Login walks the user through the PIN flow: it prints the authorization URL
// to visit, reads the PIN without echo, and exchanges it for tokens.
//
// The PIN byte slice is securely wiped before returning. Any I/O or service
// error is returned unchanged.
func (a *App) Login(ctx context.Context) error {
	if a.service.IsAuthenticated(ctx) {
		fmt.Fprintf(a.out, "Already logged in as %s\n", a.service.Username(ctx))
		return nil
	}

	fmt.Fprintf(a.out, "Open the following URL in your browser and authorize the application:\n%s/oauth2/authorize?client_id=%s&response_type=pin\n",
		a.config.APIBaseURL, a.config.ClientID)

	pin, err := getSecret(a.out, "Enter PIN: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	if err := a.service.Authenticate(ctx, string(pin)); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", a.service.Username(ctx))
	return nil
}

// Logout removes the persisted credentials and the cached access token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.service.DeleteCredentials(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
