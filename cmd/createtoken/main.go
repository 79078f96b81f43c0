package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"attendo.app/attendo/security"
)

func main() {
	id := flag.Int("id", 0, "principal id")
	name := flag.String("name", "", "principal username")
	role := flag.String("role", "supervisor", "principal role")
	email := flag.String("email", "", "principal email")
	expires := flag.Int64("expires", 3600, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("ATTENDO_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("ATTENDO_SIGNING_SECRET must be set")
	}

	token, err := security.CreateIdentityToken(&security.AttendoIdentity{
		Id:       *id,
		UserName: *name,
		Role:     *role,
		Email:    *email,
	}, secret, *expires)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
