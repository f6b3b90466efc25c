package main

import (
	"fmt"
	"log"
	"os"

	"go-jobhunt-automation/internal/browser"
)

func main() {
	fmt.Println("🍪 Testing cookie loading...")

	path := os.Getenv("COOKIES_PATH")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		log.Fatal("Pass a cookies file or set COOKIES_PATH")
	}

	cookies, err := browser.LoadCookies(path)
	if err != nil {
		log.Fatalf("Failed to load cookies: %v", err)
	}

	fmt.Printf("✅ Loaded %d cookies\n", len(cookies))

	//print first cookie as example
	if len(cookies) > 0 {
		c := cookies[0]
		fmt.Printf("\nExample cookie:\n")
		fmt.Printf("Name: %s\n", c.Name)
		fmt.Printf("Domain: %s\n", *c.Domain)
		fmt.Printf("Path: %s\n", *c.Path)
		fmt.Printf("Secure: %t\n", c.Secure != nil && *c.Secure)
	}
}
