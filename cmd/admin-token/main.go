package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/forgo/jobly/pkg/jwt"
)

func main() {
	// Flags for customization
	privateKeyPath := flag.String("key", "./keys/private.pem", "Path to JWT private key")
	publicKeyPath := flag.String("pub", "./keys/public.pem", "Path to JWT public key (written by -generate)")
	generate := flag.Bool("generate", false, "Generate a new RSA key pair at -key/-pub before signing")
	username := flag.String("user", "admin", "Username for the token")
	role := flag.String("role", jwt.RoleAdmin, "Role claim: admin or user")
	issuer := flag.String("issuer", "jobly.forgo.software", "JWT issuer")
	expMins := flag.Int("exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *role != jwt.RoleAdmin && *role != jwt.RoleUser {
		fmt.Fprintf(os.Stderr, "Error: -role must be %q or %q, got %q\n", jwt.RoleAdmin, jwt.RoleUser, *role)
		os.Exit(2)
	}

	if *generate {
		if err := jwt.GenerateKeyPair(*privateKeyPath, *publicKeyPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating keys: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s and %s\n", *privateKeyPath, *publicKeyPath)
	}

	// Create JWT service with just the private key
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: *privateKeyPath,
		Issuer:         *issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nGenerate keys first with: admin-token -generate\n")
		os.Exit(1)
	}

	claims := jwt.Claims{
		Username: *username,
		Role:     *role,
	}
	claims.Subject = *username

	// Sign token
	token, err := jwtService.Sign(claims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"token":      token,
			"token_type": "Bearer",
			"expires_in": *expMins * 60,
			"username":   *username,
			"role":       *role,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
	fmt.Println("Token Generated")
	fmt.Println("===============")
	fmt.Printf("Username: %s\n", *username)
	fmt.Printf("Role:     %s\n", *role)
	fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/jobs/1\n", token[:50]+"...")
}
