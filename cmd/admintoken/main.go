// Command admintoken mints a bearer token for the admin-only endpoints.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"cart-discount-preview/internal/pkg/clock"
	"cart-discount-preview/internal/pkg/jwt"
)

func main() {
	subject := flag.String("subject", "ops", "token subject")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("ADMIN_JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := jwt.NewService(secret, *ttl, clock.NewRealClock()).GenerateToken(*subject, jwt.RoleAdmin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to sign token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
