package mybusiness

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/mybusinessaccountmanagement/v1"
	"google.golang.org/api/option"

	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/googleauth"
)

// Account is the slice of the Account Management resource the app cares
// about. AccountID is the bare ID without the "accounts/" prefix.
type Account struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Type        string `json:"type"`
	Role        string `json:"role"`
}

// ListAccounts lists the Business Profile accounts visible to the credential.
func ListAccounts(ctx context.Context, cred *googleauth.Credential) ([]Account, error) {
	svc, err := mybusinessaccountmanagement.NewService(ctx, option.WithTokenSource(cred.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("account management service: %w", err)
	}

	var accounts []Account
	call := svc.Accounts.List().Context(ctx)
	for {
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list accounts: %w", err)
		}
		for _, a := range resp.Accounts {
			accounts = append(accounts, Account{
				AccountID:   trimResourcePrefix(a.Name, "accounts/"),
				AccountName: a.AccountName,
				Type:        a.Type,
				Role:        a.Role,
			})
		}
		if resp.NextPageToken == "" {
			break
		}
		call = svc.Accounts.List().Context(ctx).PageToken(resp.NextPageToken)
	}
	return accounts, nil
}

func trimResourcePrefix(name, prefix string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 && strings.HasPrefix(name, prefix) {
		return name[idx+1:]
	}
	return name
}
