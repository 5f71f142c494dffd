// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

// Command grantadmin grants the admin capability claim to one identity
// provider account.
//
// Usage:
//
//	IDENTITY_API_KEY=... grantadmin -uid <subject-id>
//
// It is invoked out-of-band by an operator and is not part of request
// serving: the claim lands in the subject's token the next time they sign
// in or refresh. There is deliberately no revoke counterpart here — revoking
// is rare enough to be done in the provider console.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/fotomoment/gallery-api/internal/identity"
)

type granterConfig struct {
	// APIURL is the identity provider's account-management base URL.
	APIURL string `env:"IDENTITY_API_URL" envDefault:"https://identitytoolkit.googleapis.com"`
	// APIKey authorizes account-management calls.
	APIKey string `env:"IDENTITY_API_KEY,required"`
}

func main() {
	uid := flag.String("uid", "", "subject id of the account to grant the admin claim to")
	flag.Parse()

	if *uid == "" {
		fmt.Fprintln(os.Stderr, "grantadmin: -uid is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := env.ParseAs[granterConfig]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "grantadmin: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	granter := identity.NewClaimGranter(cfg.APIURL, cfg.APIKey)
	result, err := granter.GrantAdmin(ctx, *uid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grantadmin: %v\n", err)
		os.Exit(1)
	}

	output, _ := json.MarshalIndent(result, "", "  ")
	fmt.Printf("Admin claim set.\n%s\n", output)
}
